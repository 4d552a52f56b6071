package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-apparel-stock/internal/model"
	"go-apparel-stock/internal/repository"
	"go-apparel-stock/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite")
	require.NoError(t, db.AutoMigrate(&model.Item{}, &model.Sale{}, &model.Option{}))

	invService := service.NewInventoryService(repository.NewItemRepo(db), repository.NewSaleRepo(db), db, nil)
	invHandler := NewInventoryHandler(invService, zerolog.Nop())
	optionHandler := NewOptionHandler(repository.NewOptionRepo(db), zerolog.Nop())

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/items", invHandler.GetItems)
	api.Post("/items", invHandler.CreateItem)
	api.Put("/items/:id", invHandler.UpdateItem)
	api.Put("/items/:id/quantity", invHandler.SetQuantity)
	api.Delete("/items/:id", invHandler.DeleteItem)
	api.Post("/items/:id/sell", invHandler.SellItem)
	api.Post("/items/:id/restock", invHandler.RestockItem)
	api.Get("/sales", invHandler.GetSales)
	api.Get("/options", optionHandler.GetOptions)
	api.Post("/options", optionHandler.AddOption)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestItemLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/items",
		`{"category":"Shirt","color":"Red","age_group":"2-3","price":200,"quantity":3}`)
	require.Equal(t, 201, resp.StatusCode)

	var created struct {
		Data model.Item `json:"data"`
	}
	decodeBody(t, resp, &created)
	itemID := created.Data.ID.String()

	resp = doJSON(t, app, "GET", "/api/v1/items", "")
	require.Equal(t, 200, resp.StatusCode)
	var items []model.Item
	decodeBody(t, resp, &items)
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)

	resp = doJSON(t, app, "POST", "/api/v1/items/"+itemID+"/sell", `{"price":220}`)
	require.Equal(t, 201, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/sales?item_id="+itemID, "")
	require.Equal(t, 200, resp.StatusCode)
	var sales []model.Sale
	decodeBody(t, resp, &sales)
	require.Len(t, sales, 1)

	resp = doJSON(t, app, "DELETE", "/api/v1/items/"+itemID, "")
	require.Equal(t, 200, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/items", "")
	decodeBody(t, resp, &items)
	require.Empty(t, items)

	// History is still served for the deleted item.
	resp = doJSON(t, app, "GET", "/api/v1/sales?item_id="+itemID, "")
	decodeBody(t, resp, &sales)
	require.Len(t, sales, 1)
}

func TestSetQuantityOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/items",
		`{"category":"Shirt","color":"Red","age_group":"2-3","quantity":1}`)
	require.Equal(t, 201, resp.StatusCode)

	var created struct {
		Data model.Item `json:"data"`
	}
	decodeBody(t, resp, &created)
	itemID := created.Data.ID.String()

	resp = doJSON(t, app, "PUT", "/api/v1/items/"+itemID+"/quantity", `{"quantity":9}`)
	require.Equal(t, 200, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/items", "")
	var items []model.Item
	decodeBody(t, resp, &items)
	require.Equal(t, 9, items[0].Quantity)

	resp = doJSON(t, app, "PUT", "/api/v1/items/"+itemID+"/quantity", `{"quantity":-1}`)
	require.Equal(t, 400, resp.StatusCode)
}

func TestSellOutOfStockReturnsConflict(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/items",
		`{"category":"Shirt","color":"Red","age_group":"2-3","quantity":0}`)
	require.Equal(t, 201, resp.StatusCode)

	var created struct {
		Data model.Item `json:"data"`
	}
	decodeBody(t, resp, &created)

	resp = doJSON(t, app, "POST", "/api/v1/items/"+created.Data.ID.String()+"/sell", `{"price":100}`)
	require.Equal(t, 409, resp.StatusCode)
}

func TestCreateItemValidationReturnsBadRequest(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/items", `{"color":"Red","age_group":"2-3"}`)
	require.Equal(t, 400, resp.StatusCode)
}

func TestOptionEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/options",
		`{"type":"SUBCATEGORY","value":"Graphic","parent":"T-Shirt"}`)
	require.Equal(t, 201, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/options?type=SUBCATEGORY&parent=T-Shirt", "")
	require.Equal(t, 200, resp.StatusCode)
	var values []string
	decodeBody(t, resp, &values)
	require.Equal(t, []string{"Graphic"}, values)

	// The missing parent was healed into a real category option.
	resp = doJSON(t, app, "GET", "/api/v1/options?type=CATEGORY", "")
	decodeBody(t, resp, &values)
	require.Contains(t, values, "T-Shirt")

	resp = doJSON(t, app, "GET", "/api/v1/options?type=COLOR", "")
	require.Equal(t, 400, resp.StatusCode)
}
