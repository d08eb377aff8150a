// utils/firebase.go
package utils

import (
	"context"
	"log"

	"detailify/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	// FCMClient pushes notifications to the owner's phone.
	FCMClient *messaging.Client
	// FirestoreClient backs the business settings document.
	FirestoreClient *firestore.Client
)

// FirebaseInit initializes the Firebase App with its Messaging and
// Firestore clients.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
	FCMClient = msgClient

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}
	FirestoreClient = fsClient
}
