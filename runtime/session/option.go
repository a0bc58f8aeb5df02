package session

type Option func(session *Session)

// WithID sets session ID, a generated one is used otherwise
func WithID(id string) Option {
	return func(session *Session) {
		session.id = id
	}
}

// WithUser sets the identity reported by whoami
func WithUser(user string) Option {
	return func(session *Session) {
		session.user = user
	}
}

// WithHistorySize sets history capacity
func WithHistorySize(size int) Option {
	return func(session *Session) {
		session.historySize = size
	}
}

// WithSeed creates the sample directory tree in an empty root
func WithSeed(seed bool) Option {
	return func(session *Session) {
		session.seed = seed
	}
}

// WithListeners attaches directory change listeners
func WithListeners(listeners ...DirListener) Option {
	return func(session *Session) {
		session.listeners = append(session.listeners, listeners...)
	}
}
