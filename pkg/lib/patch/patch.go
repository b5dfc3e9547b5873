// Package patch описывает поле частичного обновления с тремя состояниями:
// отсутствует, явно null, задано значение.
package patch

type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: v}
}

func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// Ptr возвращает nil для отсутствующего или null поля.
func (f Field[T]) Ptr() *T {
	if !f.Set || !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// Apply переносит значение в dst, если поле присутствовало во входных данных.
func (f Field[T]) Apply(dst **T) {
	if f.Set {
		*dst = f.Ptr()
	}
}

// Column добавляет колонку в карту обновлений gorm, если поле присутствовало.
func (f Field[T]) Column(updates map[string]interface{}, column string) {
	if !f.Set {
		return
	}
	if !f.Valid {
		updates[column] = nil
		return
	}
	updates[column] = f.Value
}

// ValidationValue отдает валидатору внутреннее значение или nil.
func (f Field[T]) ValidationValue() interface{} {
	if !f.Set || !f.Valid {
		return nil
	}
	return f.Value
}
