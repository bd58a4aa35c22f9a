package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"search-srv/pkg/discord"
	pkgErrors "search-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status and
// message; anything else becomes a 500. Server-side errors are forwarded to
// Discord when a client is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		if httpErr.Status >= http.StatusInternalServerError {
			notify(c, discordClient, httpErr.Message)
		}
		c.JSON(httpErr.Status, Resp{
			ErrorCode: httpErr.Status,
			Message:   httpErr.Message,
		})
		return
	}

	notify(c, discordClient, err.Error())
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// PanicError writes a 500 response for a recovered panic and notifies Discord.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	notify(c, discordClient, fmt.Sprintf("panic: %v", recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func notify(c *gin.Context, discordClient discord.IDiscord, detail string) {
	if discordClient == nil {
		return
	}
	ctx := c.Request.Context()
	title := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
	// Fire-and-forget: notification failure must not affect the response.
	_ = discordClient.SendError(ctx, title, detail, nil)
}
