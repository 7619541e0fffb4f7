package ports

// Logger é o log estruturado usado por serviços e handlers.
// args são pares chave/valor no estilo do slog; as implementações
// (slog ou zap) ficam em infrastructure/logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With devolve um logger com os pares fixos em toda mensagem
	With(args ...any) Logger
}
