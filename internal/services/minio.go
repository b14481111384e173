package services

import (
	"context"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"audiophile_back_end/internal/database"
	"audiophile_back_end/internal/models"
)

const signedURLExpiry = 1 * time.Hour

// ResolveImageURL transforme un chemin d'asset statique en URL signée MinIO.
// Sans MinIO configuré, le chemin statique est retourné tel quel et le
// storefront le sert lui-même.
func ResolveImageURL(ctx context.Context, path string) string {
	if database.MinIO == nil || path == "" {
		return path
	}

	object := strings.TrimPrefix(path, "/")
	bucket := os.Getenv("MINIO_BUCKET")

	signed, err := database.MinIO.PresignedGetObject(ctx, bucket, object, signedURLExpiry, url.Values{})
	if err != nil {
		log.Printf("⚠️ Erreur URL signée pour %s: %v", object, err)
		return path
	}
	return signed.String()
}

// ResolveImageSet signe les trois variantes responsive d'une image
func ResolveImageSet(ctx context.Context, set models.ImageSet) models.ImageSet {
	if database.MinIO == nil {
		return set
	}
	return models.ImageSet{
		Mobile:  ResolveImageURL(ctx, set.Mobile),
		Tablet:  ResolveImageURL(ctx, set.Tablet),
		Desktop: ResolveImageURL(ctx, set.Desktop),
	}
}

// ResolveProductImages signe toutes les images d'un produit pour la réponse API
func ResolveProductImages(ctx context.Context, p models.Product) models.Product {
	if database.MinIO == nil {
		return p
	}

	p.Images = ResolveImageSet(ctx, p.Images)
	p.Gallery.First = ResolveImageSet(ctx, p.Gallery.First)
	p.Gallery.Second = ResolveImageSet(ctx, p.Gallery.Second)
	p.Gallery.Third = ResolveImageSet(ctx, p.Gallery.Third)

	for i := range p.Others {
		p.Others[i].Image = ResolveImageSet(ctx, p.Others[i].Image)
	}
	return p
}
