package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/coverdesk/coverdesk-backend/models"
)

func TestAdaptClientDto_EmptyAssociationsRenderAsEmptyLists(t *testing.T) {
	client := models.Client{
		Id:   uuid.New(),
		Name: "RBIB",
	}

	raw, err := json.Marshal(AdaptClientDto(client))
	assert.NoError(t, err)

	assert.Contains(t, string(raw), `"tickers":[]`)
	assert.Contains(t, string(raw), `"currencies":[]`)
}

func TestAdaptClientUpdateInput_OmittedListsStayNil(t *testing.T) {
	var body UpdateClientBody
	assert.NoError(t, json.Unmarshal([]byte(`{"client_name": "RBIB"}`), &body))

	input := AdaptClientUpdateInput(body)
	assert.Equal(t, "RBIB", *input.Name)
	assert.Nil(t, input.Tickers)
	assert.Nil(t, input.Currencies)
}

func TestAdaptClientUpdateInput_EmptyListIsDistinctFromOmitted(t *testing.T) {
	var body UpdateClientBody
	assert.NoError(t, json.Unmarshal([]byte(`{"tickers": []}`), &body))

	input := AdaptClientUpdateInput(body)
	assert.NotNil(t, input.Tickers)
	assert.Empty(t, *input.Tickers)
}
