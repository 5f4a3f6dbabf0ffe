package stockops_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/RestoStock-api/internal/application/stockops"
	"github.com/jhoicas/RestoStock-api/internal/domain/entity"
)

func TestGetQuantity_CeldaInexistenteEsCero(t *testing.T) {
	s := newMemStore()
	uc := stockops.NewStockQueryUseCase(&memStockRepo{s}, newMemElementRepo(), &memOpRepo{s})

	qty, err := uc.GetQuantity(elemTomate, locCocina)
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.Zero))
}

func TestLocationSnapshot_MarcaAlertas(t *testing.T) {
	s := newMemStore()
	elements := newMemElementRepo()
	elements.put(&entity.StockElement{
		ID: elemTomate, Name: "Tomate", Unit: "kg",
		AlertThreshold: decimal.NewFromInt(10), Active: true,
	})
	require.NoError(t, (&memStockRepo{s}).Upsert(&entity.Stock{
		ElementID: elemTomate, LocationID: locCocina, Quantity: decimal.NewFromInt(4),
	}))

	uc := stockops.NewStockQueryUseCase(&memStockRepo{s}, elements, &memOpRepo{s})
	levels, err := uc.LocationSnapshot(locCocina)
	require.NoError(t, err)
	require.Len(t, levels, 1)

	assert.Equal(t, "Tomate", levels[0].ElementName)
	assert.Equal(t, "kg", levels[0].Unit)
	assert.True(t, levels[0].BelowAlert, "4 kg está bajo el umbral de 10 kg")
}

func TestGetOperation_Inexistente(t *testing.T) {
	s := newMemStore()
	uc := stockops.NewStockQueryUseCase(&memStockRepo{s}, newMemElementRepo(), &memOpRepo{s})

	resp, err := uc.GetOperation("op-fantasma")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
