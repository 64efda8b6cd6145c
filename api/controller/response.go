package controller

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应：{"error": message}
func ErrorResponse(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{"error": message})
}

// SuccessResponse 以 key 包装数据返回 200
func SuccessResponse(ctx *gin.Context, key string, data interface{}) {
	ctx.JSON(200, gin.H{key: data})
}
