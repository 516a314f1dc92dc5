package repository

// CounterRepository fuente única de secuencias (números de lote). Next debe ser
// un incremento atómico en almacenamiento, no "leer máximo y sumar uno".
type CounterRepository interface {
	Next(name string) (int64, error)
}
