package routes

import (
	"github.com/gin-gonic/gin"

	"wardbook/internal/handlers"
)

type WardRoutes struct {
	handler *handlers.WardHandler
}

func NewWardRoutes(handler *handlers.WardHandler) *WardRoutes {
	return &WardRoutes{handler: handler}
}

func (r *WardRoutes) RegisterRoutes(router *gin.RouterGroup) {
	h := r.handler

	resource(router, "/patients", h.ListPatients, h.CreatePatient, h.DeletePatient)
	resource(router, "/doctors", h.ListDoctors, h.CreateDoctor, h.DeleteDoctor)
	resource(router, "/medications", h.ListMedications, h.CreateMedication, h.DeleteMedication)
	resource(router, "/stays", h.ListStays, h.CreateStay, h.DeleteStay)
	resource(router, "/takes", h.ListTakes, h.CreateTakes, h.DeleteTakes)
	resource(router, "/treats", h.ListTreats, h.CreateTreats, h.DeleteTreats)

	router.GET("/form-options", h.FormOptions)
}

// resource mounts list, create and delete for one record type. Deletes are
// POSTs so plain HTML forms can issue them.
func resource(router *gin.RouterGroup, path string, list, create, remove gin.HandlerFunc) {
	group := router.Group(path)
	{
		group.GET("", list)
		group.POST("", create)
		group.POST("/delete", remove)
	}
}
