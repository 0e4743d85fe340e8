package utils

import (
	"time"

	scanvaultpb "github.com/scanvault/scanvault/gen/proto/scanvault/v1"
	"github.com/scanvault/scanvault/internal/entity"
)

func ToPBGroup(g *entity.Group) *scanvaultpb.Group {
	return &scanvaultpb.Group{
		Id:            g.ID.String(),
		CustomerId:    g.CustomerID,
		OwnerId:       g.OwnerID.String(),
		DocumentCount: int32(g.DocumentCount),
		CreatedAt:     g.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     g.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBUser(u *entity.User) *scanvaultpb.User {
	return &scanvaultpb.User{
		Id:          u.ID.String(),
		DisplayName: u.DisplayName,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *entity.Document) *scanvaultpb.Document {
	return &scanvaultpb.Document{
		Id:        d.ID.String(),
		GroupId:   d.GroupID.String(),
		ImageRef:  d.ImageRef,
		AssetId:   d.AssetID,
		Type:      d.Type,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
