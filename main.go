package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"barkr_server/middleware"
	"barkr_server/routes"
	"barkr_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Choose the store backend
	var store services.Store
	if os.Getenv("STORAGE") == "memory" {
		log.Println("Using in-memory store")
		store = services.NewMemoryStore()
	} else {
		log.Println("Initializing DynamoDB client...")
		dynamoClient := services.InitializeDynamoDBClient()
		store = services.NewDynamoStore(&services.DynamoService{Client: dynamoClient})
		log.Println("DynamoDB client initialized.")
	}

	// Load the song-gate challenge catalog once at startup
	catalogPath := os.Getenv("CHALLENGE_CATALOG")
	if catalogPath == "" {
		catalogPath = "challenges.yaml"
	}
	catalog, err := services.LoadChallengeCatalog(catalogPath)
	if err != nil {
		log.Fatalf("Failed to load challenge catalog: %v", err)
	}
	log.Printf("Challenge catalog loaded from %s", catalogPath)

	// Initialize Services
	profileService := services.NewDogProfileService(store)
	matchService := services.NewMatchService(store)
	gateService := services.NewSongGateService(store, catalog, matchService)
	photoService := &services.PhotoService{
		Client: services.InitializeS3Client(),
		Bucket: os.Getenv("S3_BUCKET_NAME"),
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Barkr")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Everything under /api requires an authenticated user
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(secret))

	// Register routes
	routes.RegisterProfileRoutes(api, profileService)
	routes.RegisterFeedRoutes(api, store)
	routes.RegisterSwipeRoutes(api, matchService)
	routes.RegisterGateRoutes(api, gateService)
	routes.RegisterMatchRoutes(api, matchService)
	routes.RegisterS3Routes(api, photoService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
