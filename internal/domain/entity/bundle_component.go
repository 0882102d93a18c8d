package entity

// BundleComponent asocia un producto bundle con un producto componente y su
// multiplicador de cantidad. Un producto no puede ser componente de sí mismo,
// ni directa ni transitivamente (la política de descuento de stock de bundles
// queda fuera del núcleo).
type BundleComponent struct {
	BundleID    string
	ComponentID string
	Quantity    int64 // multiplicador, > 0
}
