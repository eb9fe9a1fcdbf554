package common

const (
	// DefaultSearchMaxResults caps search matches when the caller gives no limit.
	DefaultSearchMaxResults = 10

	// TextFileSuffix is appended to text file names that lack it.
	TextFileSuffix = ".txt"
)
