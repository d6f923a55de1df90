package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/domaos/domain-radar/pkg/backend"
	"github.com/domaos/domain-radar/pkg/version"
	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type apiServer struct {
	ctx            context.Context
	log            *logrus.Entry
	port           int
	adminTokenHash string
}

func NewAPIServer(ctx context.Context, log *logrus.Entry, port int, adminTokenHash string) *apiServer {
	return &apiServer{
		ctx:            ctx,
		log:            log,
		port:           port,
		adminTokenHash: adminTokenHash,
	}
}

func (a *apiServer) Start(backend backend.Backend) error {
	logrus.Infof("Version: %s", version.Get())

	router := mux.NewRouter().StrictSlash(true)
	router.Use(loggingMiddleware(a.log))
	h := newHandler(backend)

	// When functioning properly, these routes will return the version of the app that is running
	router.Path("/").HandlerFunc(h.root)
	router.Path("/healthz").HandlerFunc(h.root)

	api := router.PathPrefix("/v1").Subrouter()

	// Speculative acquisition analysis over arbitrary domain names
	api.Path("/analyze").Methods("POST").HandlerFunc(h.analyze)

	// Read access to the scored catalog
	api.Path("/domains").Methods("GET").HandlerFunc(h.listDomains)
	api.Path("/domains/top").Methods("GET").HandlerFunc(h.topDomains)
	api.Path("/domains/search").Methods("GET").HandlerFunc(h.searchDomains)
	api.Path("/domains/{name}").Methods("GET").HandlerFunc(h.getDomain)

	// TLD reference data and aggregates
	api.Path("/tlds").Methods("GET").HandlerFunc(h.supportedTlds)
	api.Path("/tlds/stats").Methods("GET").HandlerFunc(h.allTldStats)
	api.Path("/tlds/trends").Methods("GET").HandlerFunc(h.tldTrends)
	api.Path("/tlds/{tld}/stats").Methods("GET").HandlerFunc(h.tldStats)

	// Ingestion triggers require the admin token
	adminRoutes := api.PathPrefix("").Subrouter()
	adminRoutes.Use(adminAuthMiddleware(a.adminTokenHash))
	adminRoutes.Path("/ingest").Methods("POST").HandlerFunc(h.ingest)
	adminRoutes.Path("/refresh").Methods("POST").HandlerFunc(h.refresh)

	// Note: this allows not found urls to be logged via the middleware
	// It **HAS** to be defined after all other paths are defined.
	router.NotFoundHandler = router.NewRoute().HandlerFunc(http.NotFound).GetHandler()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.port),
		Handler: ghandlers.CORS()(router),
	}

	go func() {
		a.log.WithField("port", a.port).Info("starting api server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Fatalf("listen: %s\n", err)
		}
	}()

	go backend.StartRefreshDaemon(a.ctx.Done())

	<-a.ctx.Done()

	a.log.Info("shutting down the api server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.log.WithError(err).Error("unable to shutdown the api server gracefully")
		return err
	}

	return nil
}
