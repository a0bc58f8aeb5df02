package response

// SignalKind identifies a UI directive
type SignalKind int

const (
	Clear SignalKind = iota + 1
	ColorTheme
	Effect
	Wallpaper
	Explorer
	GameStart
	ImagePreview
	VideoPreview
	AudioPreview
)

var sentinels = map[SignalKind]string{
	Clear:        "__CLEAR__",
	ColorTheme:   "__COLOR__",
	Effect:       "__EFFECT__",
	Wallpaper:    "__WALLPAPER__",
	Explorer:     "__EXPLORER__",
	GameStart:    "__GAME__",
	ImagePreview: "__IMAGE__",
	VideoPreview: "__VIDEO__",
	AudioPreview: "__AUDIO__",
}

var names = map[SignalKind]string{
	Clear:        "clear",
	ColorTheme:   "color",
	Effect:       "effect",
	Wallpaper:    "wallpaper",
	Explorer:     "explorer",
	GameStart:    "game",
	ImagePreview: "image",
	VideoPreview: "video",
	AudioPreview: "audio",
}

// Signal is a structured directive for the caller
type Signal struct {
	Kind    SignalKind `json:"-"`
	Payload string     `json:"payload,omitempty"`
}

// Sentinel returns wire token of the kind
func (k SignalKind) Sentinel() string {
	return sentinels[k]
}

func (k SignalKind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "unknown"
}

// KindOf returns signal kind for the wire token
func KindOf(sentinel string) (SignalKind, bool) {
	for kind, candidate := range sentinels {
		if candidate == sentinel {
			return kind, true
		}
	}
	return 0, false
}
