package database

// Catalog queries
const (
	InsertItemSQL = `
		INSERT INTO fnb (name, type, price)
		VALUES ($1, $2, $3)
		RETURNING fnb_id`

	ListItemsSQL = `
		SELECT fnb_id, name, type, price
		FROM fnb
		ORDER BY fnb_id`

	InsertMenuSQL = `
		INSERT INTO menu (name, is_vegetarian, price)
		VALUES ($1, $2, $3)
		RETURNING menu_id`

	InsertMenuComponentSQL = `
		INSERT INTO menu_fnb (menu_id, fnb_id, quantity)
		VALUES ($1, $2, $3)`

	UpdateMenuSQL = `
		UPDATE menu SET name = $1, is_vegetarian = $2, price = $3
		WHERE menu_id = $4`

	ListMenusSQL = `
		SELECT menu_id, name, is_vegetarian, price
		FROM menu
		ORDER BY menu_id`

	GetMenuCompositionSQL = `
		SELECT f.fnb_id, f.name, f.type, f.price, mf.quantity
		FROM menu_fnb mf
		JOIN fnb f ON f.fnb_id = mf.fnb_id
		WHERE mf.menu_id = $1
		ORDER BY f.fnb_id`

	DeleteMenuOrderLinesSQL = `
		DELETE FROM order_menu WHERE menu_id = $1`

	DeleteMenuComponentsSQL = `
		DELETE FROM menu_fnb WHERE menu_id = $1`

	DeleteMenuSQL = `
		DELETE FROM menu WHERE menu_id = $1`
)

// Order queries
const (
	GetMenuPriceSQL = `
		SELECT price FROM menu WHERE menu_id = $1`

	GetItemPriceSQL = `
		SELECT price FROM fnb WHERE fnb_id = $1`

	InsertOrderSQL = `
		INSERT INTO orders (customer_id, delivery_option, delivery_address, status, total_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id, order_date`

	InsertOrderMenuLineSQL = `
		INSERT INTO order_menu (order_id, menu_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)`

	InsertOrderItemLineSQL = `
		INSERT INTO order_fnb (order_id, fnb_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)`

	InsertDeliverySQL = `
		INSERT INTO delivery (order_id, address, status)
		VALUES ($1, $2, $3)`

	ListOrdersSQL = `
		SELECT order_id, customer_id, delivery_option, delivery_address, status, total_amount, order_date
		FROM orders
		ORDER BY order_id`

	ListOrdersByCustomerSQL = `
		SELECT order_id, customer_id, delivery_option, delivery_address, status, total_amount, order_date
		FROM orders
		WHERE customer_id = $1
		ORDER BY order_id`

	GetOrderMenuLinesSQL = `
		SELECT om.menu_id, m.name, om.quantity, om.unit_price
		FROM order_menu om
		JOIN menu m ON m.menu_id = om.menu_id
		WHERE om.order_id = $1
		ORDER BY om.menu_id`

	GetOrderItemLinesSQL = `
		SELECT ol.fnb_id, f.name, ol.quantity, ol.unit_price
		FROM order_fnb ol
		JOIN fnb f ON f.fnb_id = ol.fnb_id
		WHERE ol.order_id = $1
		ORDER BY ol.fnb_id`
)

// Delivery queries
const (
	ListDeliveriesSQL = `
		SELECT d.delivery_id, d.order_id, d.address, d.status, d.carrier, d.delivery_date,
			   o.total_amount,
			   COALESCE((SELECT string_agg(m.name || ' x' || om.quantity, ', ' ORDER BY om.menu_id)
						 FROM order_menu om
						 JOIN menu m ON m.menu_id = om.menu_id
						 WHERE om.order_id = d.order_id), '') AS menu_items,
			   COALESCE((SELECT string_agg(f.name || ' x' || ol.quantity, ', ' ORDER BY ol.fnb_id)
						 FROM order_fnb ol
						 JOIN fnb f ON f.fnb_id = ol.fnb_id
						 WHERE ol.order_id = d.order_id), '') AS fnb_items
		FROM delivery d
		JOIN orders o ON o.order_id = d.order_id
		ORDER BY d.delivery_id`

	GetDeliveryStatusSQL = `
		SELECT status FROM delivery WHERE order_id = $1 FOR UPDATE`

	UpdateDeliveryStatusSQL = `
		UPDATE delivery SET status = $1 WHERE order_id = $2`

	UpdateOrderStatusSQL = `
		UPDATE orders SET status = $1 WHERE order_id = $2`
)

// Review and payment queries
const (
	OrderExistsSQL = `
		SELECT EXISTS(SELECT 1 FROM orders WHERE order_id = $1)`

	InsertReviewSQL = `
		INSERT INTO review (order_id, customer_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING review_id, created_at`

	GetReviewByOrderSQL = `
		SELECT review_id, order_id, customer_id, rating, comment, created_at
		FROM review
		WHERE order_id = $1`

	InsertPaymentSQL = `
		INSERT INTO payment (order_id, payment_method, payment_status, amount, payment_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING payment_id, payment_date`

	GetPaymentByOrderSQL = `
		SELECT payment_id, order_id, payment_method, payment_status, amount, payment_date
		FROM payment
		WHERE order_id = $1`
)

// User queries
const (
	InsertUserSQL = `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, created_at`

	GetUserByUsernameSQL = `
		SELECT user_id, username, email, password_hash, role, created_at
		FROM users
		WHERE username = $1`
)
