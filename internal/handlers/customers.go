package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comerciotech/internal/models"
	"comerciotech/internal/service"
)

func ListCustomers(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /clientes"
		defer handlePanic(c, route)

		customers, err := svc.ListCustomers(c.Request.Context())
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

func CreateCustomer(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /clientes"
		defer handlePanic(c, route)

		var in models.CustomerInput
		if err := decodeJSON(c, &in); err != nil {
			respondWithError(c, route, err)
			return
		}

		customer, err := svc.CreateCustomer(c.Request.Context(), in)
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}

func GetCustomer(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /clientes/:id"
		defer handlePanic(c, route)

		customer, err := svc.GetCustomer(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

func UpdateCustomer(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /clientes/:id"
		defer handlePanic(c, route)

		var patch models.CustomerPatch
		if err := decodeJSON(c, &patch); err != nil {
			respondWithError(c, route, err)
			return
		}

		customer, err := svc.UpdateCustomer(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

func DeleteCustomer(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /clientes/:id"
		defer handlePanic(c, route)

		msg, err := svc.DeleteCustomer(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, messageResponse{Message: msg})
	}
}
