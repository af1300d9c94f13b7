package config

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTLS overrides the driver's TLS negotiation. The zero value leaves it to the URI.
type MongoTLS struct {
	Force    bool // MONGO_FORCE_TLS_CONFIG
	Insecure bool // MONGO_INSECURE_TLS
}

// tlsConfig pins TLS 1.2, which some Atlas clusters still require with Go 1.24.
func (t MongoTLS) tlsConfig() *tls.Config {
	if !t.Force {
		return nil
	}
	return &tls.Config{
		InsecureSkipVerify: t.Insecure,
		MinVersion:         tls.VersionTLS12,
		MaxVersion:         tls.VersionTLS12,
	}
}

// InitMongo connects to MongoDB (Atlas or self-hosted) and pings it.
// The caller owns the returned client and must Disconnect it.
func InitMongo(ctx context.Context, uri string, t MongoTLS) (*mongo.Client, error) {
	if uri == "" {
		return nil, errors.New("MONGO_URI environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetServerSelectionTimeout(20 * time.Second).
		SetConnectTimeout(15 * time.Second).
		SetTimeout(15 * time.Second).
		SetMaxPoolSize(20).
		SetMinPoolSize(1).
		SetAppName("internship-intake")

	if tc := t.tlsConfig(); tc != nil {
		clientOpts = clientOpts.SetTLSConfig(tc)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
