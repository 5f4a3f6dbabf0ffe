package stockops_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/RestoStock-api/internal/application/stockops"
	"github.com/jhoicas/RestoStock-api/internal/domain"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
)

func TestValidateOperation(t *testing.T) {
	cases := []struct {
		name    string
		in      stockops.OperationInput
		wantErr bool
	}{
		{
			name: "entree válida",
			in: stockops.OperationInput{
				Kind:       entity.OperationKindEntree,
				ElementID:  elemTomate,
				LocationID: locCocina,
				Quantity:   decimal.NewFromInt(10),
			},
		},
		{
			name: "sortie válida con cantidad decimal",
			in: stockops.OperationInput{
				Kind:       entity.OperationKindSortie,
				ElementID:  elemTomate,
				LocationID: locCocina,
				Quantity:   decimal.RequireFromString("2.5"),
			},
		},
		{
			name: "transfert válido",
			in: stockops.OperationInput{
				Kind:           entity.OperationKindTransfert,
				ElementID:      elemTomate,
				FromLocationID: locBodega,
				ToLocationID:   locCocina,
				Quantity:       decimal.NewFromInt(5),
			},
		},
		{
			name: "tipo desconocido",
			in: stockops.OperationInput{
				Kind:       "AJUSTE",
				ElementID:  elemTomate,
				LocationID: locCocina,
				Quantity:   decimal.NewFromInt(1),
			},
			wantErr: true,
		},
		{
			name: "sin element_id",
			in: stockops.OperationInput{
				Kind:       entity.OperationKindEntree,
				LocationID: locCocina,
				Quantity:   decimal.NewFromInt(1),
			},
			wantErr: true,
		},
		{
			name: "cantidad cero",
			in: stockops.OperationInput{
				Kind:       entity.OperationKindEntree,
				ElementID:  elemTomate,
				LocationID: locCocina,
				Quantity:   decimal.Zero,
			},
			wantErr: true,
		},
		{
			name: "cantidad negativa",
			in: stockops.OperationInput{
				Kind:       entity.OperationKindSortie,
				ElementID:  elemTomate,
				LocationID: locCocina,
				Quantity:   decimal.NewFromInt(-3),
			},
			wantErr: true,
		},
		{
			name: "entree sin location_id",
			in: stockops.OperationInput{
				Kind:      entity.OperationKindEntree,
				ElementID: elemTomate,
				Quantity:  decimal.NewFromInt(1),
			},
			wantErr: true,
		},
		{
			name: "transfert sin destino",
			in: stockops.OperationInput{
				Kind:           entity.OperationKindTransfert,
				ElementID:      elemTomate,
				FromLocationID: locBodega,
				Quantity:       decimal.NewFromInt(1),
			},
			wantErr: true,
		},
		{
			name: "transfert con origen igual a destino",
			in: stockops.OperationInput{
				Kind:           entity.OperationKindTransfert,
				ElementID:      elemTomate,
				FromLocationID: locBodega,
				ToLocationID:   locBodega,
				Quantity:       decimal.NewFromInt(1),
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := stockops.ValidateOperation(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
