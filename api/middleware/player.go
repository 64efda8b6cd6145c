package middleware

import (
	"strings"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID   = "X-User-Id"
	HeaderUsername = "X-Username"

	playerContextKey = "jazzgrid.player"
)

// PlayerIdentity 从请求头读取玩家身份，缺失时使用 guest
// 不做鉴权，身份由调用方自报
func PlayerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(playerContextKey, playerFromHeaders(c))
		c.Next()
	}
}

// CurrentPlayer 读取 PlayerIdentity 写入的身份；未挂载中间件时直接解析请求头
func CurrentPlayer(c *gin.Context) puzzle_grid_models.Player {
	if v, ok := c.Get(playerContextKey); ok {
		if player, ok := v.(puzzle_grid_models.Player); ok {
			return player
		}
	}
	return playerFromHeaders(c)
}

func playerFromHeaders(c *gin.Context) puzzle_grid_models.Player {
	player := puzzle_grid_models.Player{
		UserID:   strings.TrimSpace(c.GetHeader(HeaderUserID)),
		Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
	}
	if player.UserID == "" {
		player.UserID = puzzle_grid_models.GuestUserID
	}
	if player.Username == "" {
		player.Username = puzzle_grid_models.GuestUsername
	}
	return player
}
