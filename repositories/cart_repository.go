package repositories

import (
	"context"
	"time"

	"catering-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CartTx is the set of cart operations available inside a single
// transaction. The add-item flow in services runs entirely against it so
// no partial state (item without extras, half-updated price) can commit.
type CartTx interface {
	ResolveCart(ctx context.Context, code string) (*models.Cart, error)
	SetOrderType(ctx context.Context, cartID int, orderType string) error
	GetDish(ctx context.Context, id int) (*models.Dish, error)
	GetExtra(ctx context.Context, id int) (*models.ExtraItem, error)
	GetOrCreateItem(ctx context.Context, cartID, dishID int) (*models.CartItem, error)
	SetItemExtras(ctx context.Context, itemID int, extras []models.CartItemExtra) ([]models.CartItemExtra, error)
	UpdateItem(ctx context.Context, item *models.CartItem) error
}

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

// InTx runs fn inside one transaction; any error rolls everything back.
func (r *CartRepository) InTx(ctx context.Context, fn func(tx CartTx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&cartTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type cartTx struct {
	tx pgx.Tx
}

// ResolveCart gets or creates the cart for a code in one atomic
// statement. The no-op DO UPDATE makes RETURNING yield the existing row,
// so concurrent callers under the same code never create two carts.
func (t *cartTx) ResolveCart(ctx context.Context, code string) (*models.Cart, error) {
	cart := &models.Cart{}
	err := t.tx.QueryRow(ctx, `
		INSERT INTO carts (cart_code, order_type, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_code) DO UPDATE SET cart_code = EXCLUDED.cart_code
		RETURNING id, cart_code, account_id, order_type, is_active, paid, created_at
	`, code, models.OrderTypeDelivery, time.Now()).Scan(
		&cart.ID, &cart.CartCode, &cart.AccountID, &cart.OrderType,
		&cart.IsActive, &cart.Paid, &cart.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (t *cartTx) SetOrderType(ctx context.Context, cartID int, orderType string) error {
	_, err := t.tx.Exec(ctx,
		"UPDATE carts SET order_type = $1 WHERE id = $2", orderType, cartID)
	return err
}

func (t *cartTx) GetDish(ctx context.Context, id int) (*models.Dish, error) {
	var d models.Dish
	err := t.tx.QueryRow(ctx,
		"SELECT "+dishColumns+" FROM dishes WHERE id = $1", id,
	).Scan(
		&d.ID, &d.Name, &d.Slug, &d.Description, &d.Price, &d.ImageURL,
		&d.CategoryID, &d.IsAvailable, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (t *cartTx) GetExtra(ctx context.Context, id int) (*models.ExtraItem, error) {
	var e models.ExtraItem
	err := t.tx.QueryRow(ctx,
		"SELECT id, name, price, extra_category_id, is_available FROM extra_items WHERE id = $1", id,
	).Scan(&e.ID, &e.Name, &e.Price, &e.ExtraCategoryID, &e.IsAvailable)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (t *cartTx) GetOrCreateItem(ctx context.Context, cartID, dishID int) (*models.CartItem, error) {
	item := &models.CartItem{}
	err := t.tx.QueryRow(ctx, `
		INSERT INTO cart_items
			(cart_id, dish_id, quantity, special_instruction, unit_price, total_price, created_at, updated_at)
		VALUES ($1, $2, 1, '', 0, 0, $3, $3)
		ON CONFLICT (cart_id, dish_id) DO UPDATE SET updated_at = $3
		RETURNING id, cart_id, dish_id, quantity, special_instruction,
			unit_price, total_price, created_at, updated_at
	`, cartID, dishID, time.Now()).Scan(
		&item.ID, &item.CartID, &item.DishID, &item.Quantity,
		&item.SpecialInstruction, &item.UnitPrice, &item.TotalPrice,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// SetItemExtras upserts the given extras rows (quantity is overwritten
// for an extra already on the item) and removes rows no longer selected,
// keeping the stored extras consistent with the priced set. The returned
// rows carry the row ids so the response matches the cart snapshot.
func (t *cartTx) SetItemExtras(ctx context.Context, itemID int, extras []models.CartItemExtra) ([]models.CartItemExtra, error) {
	keep := make([]int, 0, len(extras))
	for i := range extras {
		err := t.tx.QueryRow(ctx, `
			INSERT INTO cart_item_extras (cart_item_id, extra_item_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT (cart_item_id, extra_item_id) DO UPDATE SET quantity = EXCLUDED.quantity
			RETURNING id
		`, itemID, extras[i].ExtraItemID, extras[i].Quantity).Scan(&extras[i].ID)
		if err != nil {
			return nil, err
		}
		keep = append(keep, extras[i].ExtraItemID)
	}

	_, err := t.tx.Exec(ctx,
		"DELETE FROM cart_item_extras WHERE cart_item_id = $1 AND extra_item_id != ALL($2)",
		itemID, keep)
	if err != nil {
		return nil, err
	}
	return extras, nil
}

func (t *cartTx) UpdateItem(ctx context.Context, item *models.CartItem) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE cart_items
		SET quantity = $1, special_instruction = $2, unit_price = $3,
			total_price = $4, updated_at = $5
		WHERE id = $6
	`, item.Quantity, item.SpecialInstruction, item.UnitPrice,
		item.TotalPrice, time.Now(), item.ID)
	return err
}

// GetCartStat returns the simplified view: cart id, code and the sum of
// item quantities.
func (r *CartRepository) GetCartStat(ctx context.Context, code string) (*models.CartStat, error) {
	stat := &models.CartStat{}
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.cart_code, COALESCE(SUM(ci.quantity), 0)
		FROM carts c
		LEFT JOIN cart_items ci ON ci.cart_id = c.id
		WHERE c.cart_code = $1
		GROUP BY c.id, c.cart_code
	`, code).Scan(&stat.ID, &stat.CartCode, &stat.NumberOfItems)
	if err != nil {
		return nil, err
	}
	return stat, nil
}

// GetCartByCode returns the full snapshot with nested items and extras.
func (r *CartRepository) GetCartByCode(ctx context.Context, code string) (*models.CartSnapshot, error) {
	snapshot := &models.CartSnapshot{}
	err := r.db.QueryRow(ctx,
		"SELECT id, cart_code, order_type, paid, created_at FROM carts WHERE cart_code = $1",
		code,
	).Scan(&snapshot.ID, &snapshot.CartCode, &snapshot.OrderType, &snapshot.Paid, &snapshot.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT ci.id, ci.dish_id, d.name, ci.quantity, ci.unit_price,
			ci.total_price, ci.special_instruction
		FROM cart_items ci
		JOIN dishes d ON ci.dish_id = d.id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at
	`, snapshot.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItemDetail{}
	itemIndex := map[int]int{}
	for rows.Next() {
		var item models.CartItemDetail
		if err := rows.Scan(&item.ID, &item.DishID, &item.DishName, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice, &item.SpecialInstruction); err != nil {
			return nil, err
		}
		item.CartCode = snapshot.CartCode
		item.DeliveryOption = snapshot.OrderType
		item.ExtraItems = []models.CartItemExtra{}
		itemIndex[item.ID] = len(items)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	extraRows, err := r.db.Query(ctx, `
		SELECT cie.id, cie.cart_item_id, cie.extra_item_id, ei.name, cie.quantity
		FROM cart_item_extras cie
		JOIN extra_items ei ON cie.extra_item_id = ei.id
		JOIN cart_items ci ON cie.cart_item_id = ci.id
		WHERE ci.cart_id = $1
		ORDER BY cie.id
	`, snapshot.ID)
	if err != nil {
		return nil, err
	}
	defer extraRows.Close()

	for extraRows.Next() {
		var extra models.CartItemExtra
		if err := extraRows.Scan(&extra.ID, &extra.CartItemID, &extra.ExtraItemID,
			&extra.ExtraName, &extra.Quantity); err != nil {
			return nil, err
		}
		if pos, ok := itemIndex[extra.CartItemID]; ok {
			items[pos].ExtraItems = append(items[pos].ExtraItems, extra)
		}
	}
	if err := extraRows.Err(); err != nil {
		return nil, err
	}

	snapshot.Items = items
	return snapshot, nil
}
