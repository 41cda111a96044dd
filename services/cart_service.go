package services

import (
	"context"
	"errors"
	"strconv"

	"catering-api/models"
	"catering-api/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CartStore is the persistence surface the cart service needs. Implemented
// by repositories.CartRepository; faked in tests.
type CartStore interface {
	InTx(ctx context.Context, fn func(tx repositories.CartTx) error) error
	GetCartStat(ctx context.Context, code string) (*models.CartStat, error)
	GetCartByCode(ctx context.Context, code string) (*models.CartSnapshot, error)
}

type CartService struct {
	store CartStore
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

type resolvedExtra struct {
	extra    *models.ExtraItem
	quantity int
}

// AddItem adds or updates the line item for (cart_code, dish_id) and
// recomputes its authoritative pricing. The whole flow, cart resolution
// included, runs in a single transaction.
//
// Extras that do not resolve to an existing extra item are skipped
// silently; the total only covers the extras that were actually stored.
func (s *CartService) AddItem(ctx context.Context, req models.AddCartItemRequest) (*models.CartItemDetail, error) {
	quantity := 1
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		quantity = *req.Quantity
	}

	var detail *models.CartItemDetail
	err := s.store.InTx(ctx, func(tx repositories.CartTx) error {
		cart, err := tx.ResolveCart(ctx, req.CartCode)
		if err != nil {
			return err
		}

		if models.OrderTypes[req.OrderOption] && req.OrderOption != cart.OrderType {
			if err := tx.SetOrderType(ctx, cart.ID, req.OrderOption); err != nil {
				return err
			}
			cart.OrderType = req.OrderOption
		}

		dish, err := tx.GetDish(ctx, req.DishID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrDishNotFound
			}
			return err
		}

		item, err := tx.GetOrCreateItem(ctx, cart.ID, dish.ID)
		if err != nil {
			return err
		}

		resolved, err := s.resolveExtras(ctx, tx, req.ExtraItems)
		if err != nil {
			return err
		}

		extras := make([]models.CartItemExtra, 0, len(resolved))
		for _, re := range resolved {
			extras = append(extras, models.CartItemExtra{
				CartItemID:  item.ID,
				ExtraItemID: re.extra.ID,
				ExtraName:   re.extra.Name,
				Quantity:    re.quantity,
			})
		}
		extras, err = tx.SetItemExtras(ctx, item.ID, extras)
		if err != nil {
			return err
		}

		item.Quantity = quantity
		item.SpecialInstruction = req.Note
		item.UnitPrice = dish.Price
		item.TotalPrice = computeTotalPrice(dish.Price, quantity, resolved)
		if err := tx.UpdateItem(ctx, item); err != nil {
			return err
		}

		detail = &models.CartItemDetail{
			ID:                 item.ID,
			DishID:             dish.ID,
			CartCode:           cart.CartCode,
			DishName:           dish.Name,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			TotalPrice:         item.TotalPrice,
			ExtraItems:         extras,
			SpecialInstruction: item.SpecialInstruction,
			DeliveryOption:     cart.OrderType,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// resolveExtras looks up every entry of the extras map. Keys that are not
// numeric or do not match an extra item are dropped without failing the
// request; an extra quantity below 1 falls back to 1.
func (s *CartService) resolveExtras(ctx context.Context, tx repositories.CartTx, selections map[string]models.ExtraSelection) ([]resolvedExtra, error) {
	resolved := make([]resolvedExtra, 0, len(selections))
	for key, selection := range selections {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		extra, err := tx.GetExtra(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, err
		}
		quantity := selection.Quantity
		if quantity < 1 {
			quantity = 1
		}
		resolved = append(resolved, resolvedExtra{extra: extra, quantity: quantity})
	}
	return resolved, nil
}

// computeTotalPrice = unit price x quantity + sum(extra price x extra
// quantity) over the resolved extras. Always exact decimal arithmetic.
func computeTotalPrice(unitPrice decimal.Decimal, quantity int, extras []resolvedExtra) decimal.Decimal {
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	for _, re := range extras {
		total = total.Add(re.extra.Price.Mul(decimal.NewFromInt(int64(re.quantity))))
	}
	return total
}

func (s *CartService) GetCartStat(ctx context.Context, code string) (*models.CartStat, error) {
	stat, err := s.store.GetCartStat(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return stat, nil
}

func (s *CartService) GetCart(ctx context.Context, code string) (*models.CartSnapshot, error) {
	snapshot, err := s.store.GetCartByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return snapshot, nil
}
