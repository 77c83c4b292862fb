package service

const (
	productCacheKey        = "product:%d"
	classificationCacheKey = "customer-classification:%d"

	DefaultRecentLimit = 20
	MaxRecentLimit     = 100 // máximo de registros por consulta de historial

	// Cuerpo máximo leído de una respuesta de error upstream
	maxErrorBodyBytes = 4 << 10
)
