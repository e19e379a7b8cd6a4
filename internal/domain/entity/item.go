package entity

// ItemType discrimina las dos clases de ítem almacenable: Material o Producto.
type ItemType string

const (
	ItemTypeMaterial ItemType = "Material"
	ItemTypeProducto ItemType = "Producto"
)

// Valid indica si el tipo es uno de los dos conocidos.
func (t ItemType) Valid() bool { return t == ItemTypeMaterial || t == ItemTypeProducto }

// ItemRef referencia tipada a un ítem de inventario. Es una unión etiquetada:
// el tipo y el ID correspondiente se fijan en el constructor, de modo que nunca
// pueden estar ambas referencias pobladas a la vez.
type ItemRef struct {
	tipo   ItemType
	itemID string
}

// MaterialRef construye la referencia a un material.
func MaterialRef(materialID string) ItemRef {
	return ItemRef{tipo: ItemTypeMaterial, itemID: materialID}
}

// ProductoRef construye la referencia a un producto.
func ProductoRef(productoID string) ItemRef {
	return ItemRef{tipo: ItemTypeProducto, itemID: productoID}
}

// Tipo devuelve el tipo de ítem referenciado.
func (r ItemRef) Tipo() ItemType { return r.tipo }

// ItemID devuelve el ID del ítem, sea material o producto.
func (r ItemRef) ItemID() string { return r.itemID }

// MaterialID devuelve el ID del material, o vacío si la referencia es a un producto.
func (r ItemRef) MaterialID() string {
	if r.tipo == ItemTypeMaterial {
		return r.itemID
	}
	return ""
}

// ProductoID devuelve el ID del producto, o vacío si la referencia es a un material.
func (r ItemRef) ProductoID() string {
	if r.tipo == ItemTypeProducto {
		return r.itemID
	}
	return ""
}

// Valid indica si la referencia tiene tipo conocido e ID no vacío.
func (r ItemRef) Valid() bool { return r.tipo.Valid() && r.itemID != "" }
