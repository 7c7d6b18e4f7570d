package notifier

import "context"

// Notifier posts a status update to a social platform and returns the
// platform's identifier for the created post.
type Notifier interface {
	Post(ctx context.Context, text string) (postID string, err error)
	Name() string
}
