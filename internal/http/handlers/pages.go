package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/steveyiyo/guide-backend/internal/core/language"
)

// PagesHandler renders the HTML front end. Templates are registered on the
// engine by the router.
type PagesHandler struct {
	MapsEnabled bool
}

func NewPagesHandler(mapsEnabled bool) *PagesHandler {
	return &PagesHandler{MapsEnabled: mapsEnabled}
}

func (h *PagesHandler) data(c *gin.Context, active string) gin.H {
	return gin.H{
		"Active":      active,
		"Languages":   language.Names(),
		"MapsEnabled": h.MapsEnabled,
		"Query":       c.Query("q"),
	}
}

func (h *PagesHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.data(c, "home"))
}

func (h *PagesHandler) Plan(c *gin.Context) {
	c.HTML(http.StatusOK, "plan.html", h.data(c, "plan"))
}

func (h *PagesHandler) Destinations(c *gin.Context) {
	c.HTML(http.StatusOK, "destinations.html", h.data(c, "destinations"))
}

// Chat renders the chat page; ?q= prefills the message box.
func (h *PagesHandler) Chat(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", h.data(c, "chat"))
}

// Compare turns the planner's compare form into a prefilled chat question.
// Without both places it sends the user back to the planner.
func (h *PagesHandler) Compare(c *gin.Context) {
	a := strings.TrimSpace(c.Query("a"))
	b := strings.TrimSpace(c.Query("b"))
	if a == "" || b == "" {
		c.Redirect(http.StatusFound, "/plan")
		return
	}
	c.Redirect(http.StatusFound, "/chat?q="+url.QueryEscape("Compare "+a+" and "+b))
}
