// utils/firebase.go
package utils

import (
	"context"
	"log"

	"attendly/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	FirebaseApp     *firebase.App
	FirestoreClient *firestore.Client
	AuthClient      *auth.Client
)

// FirebaseInit initializes the Firebase App. Credentials come from
// FIREBASE_CREDENTIALS_FILE, or the ambient application default credentials.
func FirebaseInit() {
	ctx := context.Background()
	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsFile; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}
	var fbConfig *firebase.Config
	if id := config.AppConfig.FirebaseProjectID; id != "" {
		fbConfig = &firebase.Config{ProjectID: id}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}
	FirebaseApp = app
}

// GetFirestore returns the Firestore client, creating it on first use.
func GetFirestore() *firestore.Client {
	if FirestoreClient != nil {
		return FirestoreClient
	}
	if FirebaseApp == nil {
		FirebaseInit()
	}
	client, err := FirebaseApp.Firestore(context.Background())
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}
	FirestoreClient = client
	return client
}

// GetAuthClient returns the Firebase Auth client, creating it on first use.
func GetAuthClient() *auth.Client {
	if AuthClient != nil {
		return AuthClient
	}
	if FirebaseApp == nil {
		FirebaseInit()
	}
	client, err := FirebaseApp.Auth(context.Background())
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}
	AuthClient = client
	return client
}
