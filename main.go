package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"cinder_server/auth"
	"cinder_server/config"
	"cinder_server/realtime"
	"cinder_server/routes"
	"cinder_server/services"
	"cinder_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	s3Service, err := services.NewS3Service(cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	hub := realtime.NewHub()

	// Initialize Services
	profileService := &services.UserProfileService{Dynamo: dynamoService}
	swipeService := &services.SwipeService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService, Swipes: swipeService, Profiles: profileService}
	chatService := &services.ChatService{Dynamo: dynamoService, Profiles: profileService, Hub: hub}
	feedService := &services.FeedService{Dynamo: dynamoService, Swipes: swipeService}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Cinder")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, profileService, tokens)
	routes.RegisterFeedRoutes(r, feedService, profileService, tokens)
	routes.RegisterSwipeRoutes(r, swipeService, matchService, tokens)
	routes.RegisterMatchRoutes(r, matchService, tokens)
	routes.RegisterChatRoutes(r, chatService, tokens)
	routes.RegisterS3Routes(r, s3Service, tokens)

	// Realtime transport
	socketServer := socket.NewSocketServer(chatService, tokens)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
