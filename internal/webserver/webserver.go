package webserver

import (
	"fmt"
	"net"
	"net/http"

	cors "github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/Tharlwin/nitroshare-go/internal/coordinator"
)

// NewRouter builds the control API for the coordination service. It is the
// external cancellation entry point: anything that can reach it may request
// a cooperative stop by identity.
func NewRouter(svc *coordinator.Service) *gin.Engine {
	r := gin.New()
	r.Use(sloggin.New(log()), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	h := &transferHandler{svc: svc}
	r.GET("/transfers", h.listTransfers)
	r.GET("/transfers/:id", h.getTransfer)
	r.POST("/transfers/:id/stop", h.stopTransfer)

	return r
}

func NewTransferServer(svc *coordinator.Service, port int) *http.Server {
	return &http.Server{
		Handler: NewRouter(svc),
		Addr:    net.JoinHostPort("0.0.0.0", fmt.Sprint(port)),
	}
}
