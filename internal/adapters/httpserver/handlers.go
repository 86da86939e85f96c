package httpserver

import (
	"net/http"

	"tripmate/internal/app"
)

// Handlers bundles the application services the routes dispatch to.
type Handlers struct {
	Auth      *app.AuthService
	Chat      *app.ChatService
	Favorites *app.FavoritesService
	Booking   *app.BookingService
	Search    *app.SearchService
	Admin     *app.AdminService
}

// MountHandlers registers the full route table on the server router.
func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", h.welcome)
	s.mux.Get("/healthz", h.healthz)

	s.mux.Post("/register/", h.register)
	s.mux.Post("/login/", h.login)
	s.mux.Post("/admin-login/", h.adminLogin)

	s.mux.Post("/predict/", h.predict)
	s.mux.Post("/chat/", h.chat)
	s.mux.Get("/chat/{userId}", h.chatHistory)
	s.mux.Delete("/chat/{userId}", h.chatPurge)
	s.mux.Post("/recommendation/", h.recommend)

	s.mux.Post("/add-to-fav/{userId}", h.addFavorite)
	s.mux.Get("/get-fav/{userId}", h.listFavorites)
	s.mux.Delete("/delete-fav/{favId}", h.deleteFavorite)

	s.mux.Get("/hotels/searchByCoordinates", h.searchByCoordinates)

	s.mux.Post("/sendEmail", h.sendEmail)

	s.mux.Get("/get-users/", h.adminUsers)
	s.mux.Get("/get-transactions/", h.adminTransactions)
	s.mux.Get("/get-favs/", h.adminFavorites)
	s.mux.Get("/get-chats/", h.adminChats)
}

func (h *Handlers) welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello, Welcome to our server !!!"})
}

func (h *Handlers) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
