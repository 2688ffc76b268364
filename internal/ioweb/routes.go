package ioweb

import "github.com/gin-gonic/gin"

func (s *Server) mountRoutes(r *gin.Engine) {
	api := r.Group("/api", s.authenticate(), s.negotiateLocale())

	api.GET("/health", health)
	api.GET("/locales", locales)
	api.GET("/traditions", traditions)
	api.POST("/names/:relation", s.names)
	api.GET("/census", censusPlaces)
	api.GET("/census/:place", censusPlace)

	api.POST("/login", s.login)
	api.POST("/logout", s.logout)
	api.POST("/register", s.register)

	me := api.Group("/me", requireUser)
	me.GET("", s.me)
	me.PUT("/password", s.changePassword)
	me.GET("/preferences/:name", s.preference)
	me.PUT("/preferences/:name", s.setPreference)

	users := api.Group("/users", s.requireAdmin)
	users.GET("", s.listUsers)
	users.POST("", s.createUser)
	users.GET("/latest", s.latestUser)
	users.GET("/:id", s.getUser)
	users.DELETE("/:id", s.deleteUser)
	users.POST("/:id/approve", s.approveUser)
	users.POST("/:id/verify", s.verifyUser)
	users.PUT("/:id/trees/:tree/role", s.setRole)

	trees := api.Group("/trees")
	trees.GET("", s.listTrees)
	trees.POST("", s.requireAdmin, s.createTree)
	trees.GET("/:tree/role", requireUser, s.treeRole)
	trees.PUT("/:tree/settings/:setting", s.requireAdmin, s.setTreeSetting)
}
