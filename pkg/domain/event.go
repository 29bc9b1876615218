package domain

// Event representa um evento de domínio. O nome identifica o tipo do evento
// e é a chave usada pelo barramento para resolver os manipuladores.
type Event[T any] interface {
	EventName() string
	Payload() T
}
