package api

import (
	"context"
	"strings"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/postflow-io/postflow/pkg/models"
	"github.com/postflow-io/postflow/pkg/services"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to
// ConnectionManager. The connection is bound to the authenticated creator;
// channel subscriptions are authorized against it.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(503, "WebSocket not available")
	}

	principal := principalFrom(c)

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// The auth proxy terminates external traffic; cross-origin browser
		// connections never reach this handler directly.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), principal.CreatorID, conn)
	return nil
}

// postChannelAuthorizer authorizes post:{id} channel subscriptions by
// resolving post ownership. Creator channels are checked by the
// ConnectionManager itself.
type postChannelAuthorizer struct {
	posts *services.PostService
}

// NewPostChannelAuthorizer creates the channel authorizer backed by the
// post service.
func NewPostChannelAuthorizer(posts *services.PostService) *postChannelAuthorizer {
	return &postChannelAuthorizer{posts: posts}
}

// CanSubscribe reports whether the creator owns the post behind a post:{id}
// channel. Unknown channel shapes are denied.
func (a *postChannelAuthorizer) CanSubscribe(ctx context.Context, creatorID, channel string) bool {
	postID, ok := strings.CutPrefix(channel, "post:")
	if !ok || postID == "" {
		return false
	}
	principal := models.CreatorPrincipal{CreatorID: creatorID}
	_, err := a.posts.GetPost(ctx, principal, postID)
	return err == nil
}
