package controllers

import (
	"net/http"

	"github.com/arjun-kp/PayTrail/lookup"
	"github.com/arjun-kp/PayTrail/utils"
	"github.com/gin-gonic/gin"
)

var lookupService *lookup.Service

// Init wires the controllers to the lookup service. Called once from main
// after the table source is constructed.
func Init(svc *lookup.Service) {
	lookupService = svc
}

// GET /v1/customer-data?email=&phone=
//
// Resolves a customer identity into the customer's payments, orders and
// refunds. Errors are reported in-body with success=false; the HTTP status
// is always 200.
func GetCustomerData(c *gin.Context) {
	email := c.Query("email")
	phone := c.Query("phone")
	utils.LogInfo("GetCustomerData called, email present: %t, phone present: %t", email != "", phone != "")

	response := lookupService.CustomerData(email, phone)
	if !response.Success {
		utils.LogDebug("Customer data lookup returned failure: %s", response.Error)
	}

	c.JSON(http.StatusOK, response)
}
