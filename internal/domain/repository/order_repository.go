package repository

import "github.com/tu-usuario/resto-pro/internal/domain/entity"

// OrderRepository define el puerto de persistencia para pedidos.
// Create persiste el pedido con sus líneas; se invoca dentro de la
// transacción que abre el TxRunner de pedidos.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	UpdateStatus(id, status string) error
	List(status, customerID string, limit, offset int) ([]*entity.Order, error)
	Delete(id string) error
}

// SettingRepository define el puerto de persistencia para configuración clave/valor.
type SettingRepository interface {
	Get(key string) (*entity.Setting, error)
	Upsert(setting *entity.Setting) error
	List(onlyPublic bool) ([]*entity.Setting, error)
	Delete(key string) error
}
