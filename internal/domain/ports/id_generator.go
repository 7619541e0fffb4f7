package ports

// IDGenerator gera IDs numéricos ordenados no tempo (logs de auditoria)
type IDGenerator interface {
	NextID() int64
}
