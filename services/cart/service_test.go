package cart

import (
	"testing"

	"github.com/rightguydaniel/deluxconex-BE/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCartRepo struct {
	carts map[string]*models.Cart
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{carts: map[string]*models.Cart{}}
}

func (r *memoryCartRepo) GetByUserID(userID string) (*models.Cart, error) {
	return r.carts[userID], nil
}
func (r *memoryCartRepo) Save(cart *models.Cart) error {
	r.carts[cart.UserID] = cart
	return nil
}
func (r *memoryCartRepo) DeleteByUserID(userID string) error {
	delete(r.carts, userID)
	return nil
}

func newCartService() (*DefaultCartService, *memoryCartRepo) {
	repo := newMemoryCartRepo()
	return &DefaultCartService{Repo: repo}, repo
}

func containerLine(productID string, price float64, qty int, shipping float64) models.CartItem {
	item := models.CartItem{
		ProductID: productID,
		Name:      "Container " + productID,
		BasePrice: price,
		ItemPrice: price,
		Quantity:  qty,
	}
	if shipping > 0 {
		item.SelectedDelivery = &models.CartDelivery{Method: "tilt-bed", Price: shipping}
	}
	return item
}

func TestGetCartReturnsEmptyCart(t *testing.T) {
	svc, repo := newCartService()

	cart, err := svc.GetCart("usr-1")
	require.NoError(t, err)

	assert.Equal(t, "usr-1", cart.UserID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)

	// Nothing persisted for a cart that was never written to.
	assert.Nil(t, repo.carts["usr-1"])
}

func TestAddItemTotals(t *testing.T) {
	svc, _ := newCartService()

	cart, err := svc.AddItem("usr-1", containerLine("p1", 100, 1, 5))
	require.NoError(t, err)

	assert.Equal(t, 100.0, cart.Subtotal)
	assert.Equal(t, 5.0, cart.Shipping)
	assert.Equal(t, 1.0, cart.Tax)
	assert.Equal(t, 106.0, cart.Total)
}

func TestAddItemMergesSameProduct(t *testing.T) {
	svc, _ := newCartService()

	_, err := svc.AddItem("usr-1", containerLine("p1", 100, 1, 5))
	require.NoError(t, err)
	cart, err := svc.AddItem("usr-1", containerLine("p1", 100, 2, 5))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 300.0, cart.Items[0].TotalPrice)
	assert.Equal(t, 300.0, cart.Subtotal)
}

func TestAddItemShippingSumsPerLine(t *testing.T) {
	svc, _ := newCartService()

	_, err := svc.AddItem("usr-1", containerLine("p1", 100, 1, 5))
	require.NoError(t, err)
	cart, err := svc.AddItem("usr-1", containerLine("p2", 50, 2, 10))
	require.NoError(t, err)

	assert.Equal(t, 200.0, cart.Subtotal)
	assert.Equal(t, 15.0, cart.Shipping)
	assert.Equal(t, 2.0, cart.Tax)
	assert.Equal(t, 217.0, cart.Total)
}

func TestAddItemRejectsInvalidLine(t *testing.T) {
	svc, _ := newCartService()

	_, err := svc.AddItem("usr-1", containerLine("", 100, 1, 0))
	assert.Error(t, err)

	_, err = svc.AddItem("usr-1", containerLine("p1", 100, 0, 0))
	assert.Error(t, err)

	_, err = svc.AddItem("usr-1", containerLine("p1", 0, 1, 0))
	assert.Error(t, err)
}

func TestUpdateQuantity(t *testing.T) {
	svc, _ := newCartService()

	_, err := svc.AddItem("usr-1", containerLine("p1", 100, 1, 5))
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity("usr-1", "p1", 4)
	require.NoError(t, err)
	assert.Equal(t, 400.0, cart.Items[0].TotalPrice)
	assert.Equal(t, 409.0, cart.Total)

	_, err = svc.UpdateQuantity("usr-1", "missing", 2)
	assert.Error(t, err)

	_, err = svc.UpdateQuantity("usr-1", "p1", -1)
	assert.Error(t, err)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, _ := newCartService()

	_, err := svc.AddItem("usr-1", containerLine("p1", 100, 1, 5))
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity("usr-1", "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestRemoveItem(t *testing.T) {
	svc, _ := newCartService()

	_, err := svc.AddItem("usr-1", containerLine("p1", 100, 1, 5))
	require.NoError(t, err)
	_, err = svc.AddItem("usr-1", containerLine("p2", 50, 1, 0))
	require.NoError(t, err)

	cart, err := svc.RemoveItem("usr-1", "p1")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
	assert.Equal(t, 50.0, cart.Subtotal)
	assert.Zero(t, cart.Shipping)
	assert.Equal(t, 50.5, cart.Total)
}

func TestClearCart(t *testing.T) {
	svc, repo := newCartService()

	_, err := svc.AddItem("usr-1", containerLine("p1", 100, 1, 5))
	require.NoError(t, err)
	require.NotNil(t, repo.carts["usr-1"])

	require.NoError(t, svc.ClearCart("usr-1"))
	assert.Nil(t, repo.carts["usr-1"])
}
