package handlers

// AppHandlers - контейнер всех HTTP-хендлеров приложения
type AppHandlers struct {
	Contact *ContactHandler
	Chat    *ChatHandler
	Auth    *AuthHandler
	Admin   *AdminHandler
	Content *ContentHandler
}
