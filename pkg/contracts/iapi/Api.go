package iapi

import "github.com/gin-gonic/gin"

type Api interface {
	Router() *gin.Engine

	Health(c *gin.Context)
	GetVersion(c *gin.Context)
	ListKinds(c *gin.Context)
	List(c *gin.Context)
	Describe(c *gin.Context)
	Delete(c *gin.Context)
}
