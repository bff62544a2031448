package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coverdesk/coverdesk-backend/dto"
	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/pure_utils"
	"github.com/coverdesk/coverdesk-backend/usecases"
)

type ClientIdUriInput struct {
	ClientId string `uri:"client_id" binding:"required,uuid"`
}

func HandleListClients(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// ticker and currency accept both repeated parameters and
		// comma-separated values; normalization folds the two forms together.
		filters := models.ClientFilters{
			Query:      c.Query("q"),
			Tickers:    c.QueryArray("ticker"),
			Currencies: c.QueryArray("currency"),
		}

		usecase := uc.NewClientUseCase()
		clients, err := usecase.ListClients(ctx, filters)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.ClientListResponse{
			Items: pure_utils.Map(clients, dto.AdaptClientDto),
		})
	}
}

func HandleCreateClient(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateClientBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error()})
			return
		}

		usecase := uc.NewClientUseCase()
		client, err := usecase.CreateClient(ctx, dto.AdaptClientCreateInput(body))
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptClientDto(client))
	}
}

func HandleUpdateClient(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uriInput ClientIdUriInput
		if err := c.ShouldBindUri(&uriInput); err != nil {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error()})
			return
		}
		clientId, err := uuid.Parse(uriInput.ClientId)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error()})
			return
		}

		var body dto.UpdateClientBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error()})
			return
		}

		usecase := uc.NewClientUseCase()
		client, err := usecase.UpdateClient(ctx, clientId, dto.AdaptClientUpdateInput(body))
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptClientDto(client))
	}
}

func HandleClientAuditTrail(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uriInput ClientIdUriInput
		if err := c.ShouldBindUri(&uriInput); err != nil {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error()})
			return
		}
		clientId, err := uuid.Parse(uriInput.ClientId)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error()})
			return
		}

		usecase := uc.NewClientUseCase()
		entries, err := usecase.GetAuditTrail(ctx, clientId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AuditListResponse{
			Items: pure_utils.Map(entries, dto.AdaptAuditLogEntryDto),
		})
	}
}
