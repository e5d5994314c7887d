// Package controllers handles HTTP request handling
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/middleware"
)

// Pages renders templates with the values the shared layout expects
type Pages struct {
	DataScience bool
}

// Render writes the named template. user may be nil on public pages.
func (p Pages) Render(c *gin.Context, status int, name string, user *models.User, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = middleware.Flashes(c)
	data["DataScience"] = p.DataScience
	if user != nil {
		data["User"] = user
	}
	c.HTML(status, name, data)
}
