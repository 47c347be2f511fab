package domain

// Item is one inventory record. The SKU is the unique key within a single
// node's store and is immutable once created.
type Item struct {
	SKU         string
	Name        string
	Description string
	Quantity    int64
}

// ItemPatch describes a partial update. Nil fields are left unchanged.
type ItemPatch struct {
	Name        *string
	Description *string
	Quantity    *int64
}
