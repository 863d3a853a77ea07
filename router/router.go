package router

import (
	"net/http"

	"faculty-portal/app/controllers"
	"faculty-portal/app/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, catalog *controllers.Catalog, uploadCtrl *controllers.UploadController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/ping", httpCtrl.Ping)
	mux.HandleFunc("/api/register", authCtrl.Register)
	mux.HandleFunc("/api/login", authCtrl.Login)

	// record categories, all behind the bearer token
	mux.Handle("/api/funded-research", mw.RequireAuth(http.HandlerFunc(catalog.FundedResearch.Handle)))
	mux.Handle("/api/books", mw.RequireAuth(http.HandlerFunc(catalog.Books.Handle)))
	mux.Handle("/api/articles", mw.RequireAuth(http.HandlerFunc(catalog.Articles.Handle)))
	mux.Handle("/api/conferences", mw.RequireAuth(http.HandlerFunc(catalog.Conferences.Handle)))
	mux.Handle("/api/workshops", mw.RequireAuth(http.HandlerFunc(catalog.Workshops.Handle)))
	mux.Handle("/api/awards", mw.RequireAuth(http.HandlerFunc(catalog.Awards.Handle)))
	mux.Handle("/api/patents", mw.RequireAuth(http.HandlerFunc(catalog.Patents.Handle)))

	// proof document store
	mux.Handle("/api/upload", mw.RequireAuth(http.HandlerFunc(uploadCtrl.Upload)))

	return mux
}
