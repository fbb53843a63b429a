package service

const (
	// DefaultHistoryLimit caps the history list when no limit is configured
	DefaultHistoryLimit = 20

	// Separator used in history titles
	titleSeparator = " · "
)
