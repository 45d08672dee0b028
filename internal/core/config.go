package core

// RuntimeConfig is what the host knows about the terminal it draws into.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host loop (default 60)
	Seed     int64 // RNG seed, 0 means seed from the current time
}

