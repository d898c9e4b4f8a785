package schema

// Orders returns the master-data order record schema used by the staging
// table when no schema file is configured.
func Orders() *Schema {
	return &Schema{
		Fields: []Field{
			{Name: "order_id", Type: "STRING"},
			{Name: "customer_id", Type: "STRING"},
			{Name: "order_status", Type: "STRING"},
			{Name: "order_purchase_timestamp", Type: "TIMESTAMP"},
			{Name: "order_approved_at", Type: "TIMESTAMP"},
			{Name: "order_delivered_timestamp", Type: "TIMESTAMP"},
			{Name: "order_estimated_delivery_date", Type: "DATE"},
			{Name: "customer_zip_code_prefix", Type: "STRING"},
			{Name: "customer_city", Type: "STRING"},
			{Name: "customer_state", Type: "STRING"},
			{Name: "product_id", Type: "STRING"},
			{Name: "seller_id", Type: "STRING"},
			{Name: "price", Type: "FLOAT"},
			{Name: "shipping_charges", Type: "FLOAT"},
			{Name: "payment_sequential", Type: "INTEGER"},
			{Name: "payment_type", Type: "STRING"},
			{Name: "payment_installments", Type: "INTEGER"},
			{Name: "payment_value", Type: "FLOAT"},
			{Name: "product_category_name", Type: "STRING"},
			{Name: "product_weight_g", Type: "FLOAT"},
			{Name: "product_length_cm", Type: "FLOAT"},
			{Name: "product_height_cm", Type: "FLOAT"},
			{Name: "product_width_cm", Type: "FLOAT"},
		},
	}
}
