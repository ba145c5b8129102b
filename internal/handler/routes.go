package handler

import "github.com/gin-gonic/gin"

// RegisterCatalogRoutes mounts the read-only catalog endpoints on group.
func RegisterCatalogRoutes(group *gin.RouterGroup, activities *ActivityHandler, teachers *TeacherHandler) {
	activityRoutes := group.Group("/activities")
	activityRoutes.GET("", activities.List)
	activityRoutes.GET("/highlighted", activities.Highlighted)
	activityRoutes.GET("/export", activities.Export)
	activityRoutes.GET("/:id", activities.Get)

	teacherRoutes := group.Group("/teachers")
	teacherRoutes.GET("", teachers.List)
	teacherRoutes.GET("/highlighted", teachers.Highlighted)
	teacherRoutes.GET("/:id", teachers.Get)
}

// RegisterOpsRoutes mounts health, readiness and metrics endpoints.
func RegisterOpsRoutes(r gin.IRoutes, ops *MetricsHandler) {
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	r.GET("/metrics", ops.Prometheus)
}
