package recorder

// PostRecord holds everything worth keeping about one daily post.
type PostRecord struct {
	AttemptID    string // uuid assigned per run, for log correlation
	Day          int
	Variant      string // DailyUpdate kind
	Mcap         float64
	PriceUSD     float64
	LiquidityUSD float64
	Fallback     bool
	PostID       string // platform identifier of the created post
	Message      string
}

// Recorder persists post history for later analysis.
type Recorder interface {
	RecordPost(rec *PostRecord) error
	Close() error
}
