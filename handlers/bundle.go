package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handlers the route registration needs.
type HandlerBundle struct {
	// Webhook endpoint.
	HandleInbound gin.HandlerFunc

	// Admin endpoints.
	AdminLogin     gin.HandlerFunc
	ListBookings   gin.HandlerFunc
	ListResources  gin.HandlerFunc
	CreateResource gin.HandlerFunc
}
