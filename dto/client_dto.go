package dto

import (
	"time"

	"github.com/coverdesk/coverdesk-backend/models"
)

type APIClient struct {
	Id                    string    `json:"id"`
	ClientName            string    `json:"client_name"`
	Tickers               []string  `json:"tickers"`
	Currencies            []string  `json:"currencies"`
	TenorsMin             *string   `json:"tenors_min"`
	TenorsMax             *string   `json:"tenors_max"`
	TenorsSweetspot       *string   `json:"tenors_sweetspot"`
	FrnBuyer              bool      `json:"frn_buyer"`
	CallableBuyer         bool      `json:"callable_buyer"`
	PrivatePlacementBuyer *string   `json:"private_placement_buyer"`
	EsgGreen              bool      `json:"esg_green"`
	EsgSocial             bool      `json:"esg_social"`
	EsgSustainable        bool      `json:"esg_sustainable"`
	TargetSpreadOis       *string   `json:"target_spread_ois"`
	TargetGSpread         *string   `json:"target_g_spread"`
	TomsCode              *string   `json:"toms_code"`
	ClientNotes           *string   `json:"client_notes"`
	Region                *string   `json:"region"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func AdaptClientDto(client models.Client) APIClient {
	return APIClient{
		Id:                    client.Id.String(),
		ClientName:            client.Name,
		Tickers:               client.TickerSymbols(),
		Currencies:            client.CurrencyCodes(),
		TenorsMin:             client.TenorsMin,
		TenorsMax:             client.TenorsMax,
		TenorsSweetspot:       client.TenorsSweetspot,
		FrnBuyer:              client.FrnBuyer,
		CallableBuyer:         client.CallableBuyer,
		PrivatePlacementBuyer: client.PrivatePlacementBuyer,
		EsgGreen:              client.EsgGreen,
		EsgSocial:             client.EsgSocial,
		EsgSustainable:        client.EsgSustainable,
		TargetSpreadOis:       client.TargetSpreadOis,
		TargetGSpread:         client.TargetGSpread,
		TomsCode:              client.TomsCode,
		ClientNotes:           client.ClientNotes,
		Region:                client.Region,
		CreatedAt:             client.CreatedAt,
		UpdatedAt:             client.UpdatedAt,
	}
}

type ClientListResponse struct {
	Items []APIClient `json:"items"`
}

type CreateClientBody struct {
	ClientName            string    `json:"client_name" binding:"required"`
	Tickers               *[]string `json:"tickers"`
	Currencies            *[]string `json:"currencies"`
	TenorsMin             *string   `json:"tenors_min"`
	TenorsMax             *string   `json:"tenors_max"`
	TenorsSweetspot       *string   `json:"tenors_sweetspot"`
	FrnBuyer              *bool     `json:"frn_buyer"`
	CallableBuyer         *bool     `json:"callable_buyer"`
	PrivatePlacementBuyer *string   `json:"private_placement_buyer"`
	EsgGreen              *bool     `json:"esg_green"`
	EsgSocial             *bool     `json:"esg_social"`
	EsgSustainable        *bool     `json:"esg_sustainable"`
	TargetSpreadOis       *string   `json:"target_spread_ois"`
	TargetGSpread         *string   `json:"target_g_spread"`
	TomsCode              *string   `json:"toms_code"`
	ClientNotes           *string   `json:"client_notes"`
	Region                *string   `json:"region"`
}

func AdaptClientCreateInput(body CreateClientBody) models.ClientCreateInput {
	return models.ClientCreateInput{
		Name:                  body.ClientName,
		Tickers:               body.Tickers,
		Currencies:            body.Currencies,
		TenorsMin:             body.TenorsMin,
		TenorsMax:             body.TenorsMax,
		TenorsSweetspot:       body.TenorsSweetspot,
		FrnBuyer:              body.FrnBuyer,
		CallableBuyer:         body.CallableBuyer,
		PrivatePlacementBuyer: body.PrivatePlacementBuyer,
		EsgGreen:              body.EsgGreen,
		EsgSocial:             body.EsgSocial,
		EsgSustainable:        body.EsgSustainable,
		TargetSpreadOis:       body.TargetSpreadOis,
		TargetGSpread:         body.TargetGSpread,
		TomsCode:              body.TomsCode,
		ClientNotes:           body.ClientNotes,
		Region:                body.Region,
	}
}

type UpdateClientBody struct {
	ClientName            *string   `json:"client_name"`
	Tickers               *[]string `json:"tickers"`
	Currencies            *[]string `json:"currencies"`
	TenorsMin             *string   `json:"tenors_min"`
	TenorsMax             *string   `json:"tenors_max"`
	TenorsSweetspot       *string   `json:"tenors_sweetspot"`
	FrnBuyer              *bool     `json:"frn_buyer"`
	CallableBuyer         *bool     `json:"callable_buyer"`
	PrivatePlacementBuyer *string   `json:"private_placement_buyer"`
	EsgGreen              *bool     `json:"esg_green"`
	EsgSocial             *bool     `json:"esg_social"`
	EsgSustainable        *bool     `json:"esg_sustainable"`
	TargetSpreadOis       *string   `json:"target_spread_ois"`
	TargetGSpread         *string   `json:"target_g_spread"`
	TomsCode              *string   `json:"toms_code"`
	ClientNotes           *string   `json:"client_notes"`
	Region                *string   `json:"region"`
}

func AdaptClientUpdateInput(body UpdateClientBody) models.ClientUpdateInput {
	return models.ClientUpdateInput{
		Name:                  body.ClientName,
		Tickers:               body.Tickers,
		Currencies:            body.Currencies,
		TenorsMin:             body.TenorsMin,
		TenorsMax:             body.TenorsMax,
		TenorsSweetspot:       body.TenorsSweetspot,
		FrnBuyer:              body.FrnBuyer,
		CallableBuyer:         body.CallableBuyer,
		PrivatePlacementBuyer: body.PrivatePlacementBuyer,
		EsgGreen:              body.EsgGreen,
		EsgSocial:             body.EsgSocial,
		EsgSustainable:        body.EsgSustainable,
		TargetSpreadOis:       body.TargetSpreadOis,
		TargetGSpread:         body.TargetGSpread,
		TomsCode:              body.TomsCode,
		ClientNotes:           body.ClientNotes,
		Region:                body.Region,
	}
}
