package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comerciotech/internal/models"
	"comerciotech/internal/service"
)

func ListOrders(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /pedidos"
		defer handlePanic(c, route)

		orders, err := svc.ListOrders(c.Request.Context())
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func CreateOrder(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /pedidos"
		defer handlePanic(c, route)

		var in models.OrderInput
		if err := decodeJSON(c, &in); err != nil {
			respondWithError(c, route, err)
			return
		}

		order, err := svc.CreateOrder(c.Request.Context(), in)
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func GetOrder(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /pedidos/:id"
		defer handlePanic(c, route)

		order, err := svc.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrder(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /pedidos/:id"
		defer handlePanic(c, route)

		var patch models.OrderPatch
		if err := decodeJSON(c, &patch); err != nil {
			respondWithError(c, route, err)
			return
		}

		order, err := svc.UpdateOrder(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrder(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /pedidos/:id"
		defer handlePanic(c, route)

		msg, err := svc.DeleteOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, messageResponse{Message: msg})
	}
}
