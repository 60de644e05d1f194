package providers

import (
	"context"
	"fmt"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// --- ClusterProvider implementation ---

// DescribeCluster fetches one cluster with its members and tags.
func (p *AWSProvider) DescribeCluster(ctx context.Context, id string) (*domain.Cluster, error) {
	out, err := p.rds.DescribeDBClusters(ctx, &rds.DescribeDBClustersInput{
		DBClusterIdentifier: aws.String(id),
	})
	if err != nil {
		return nil, mapAWSError("describe cluster "+id, err)
	}
	if len(out.DBClusters) == 0 {
		return nil, fmt.Errorf("failed to describe cluster %s: %w", id, domain.ErrNotFound)
	}

	cluster := toDomainCluster(out.DBClusters[0])
	return &cluster, nil
}

// ListClusters pages through every cluster in the region.
func (p *AWSProvider) ListClusters(ctx context.Context) ([]domain.Cluster, error) {
	var clusters []domain.Cluster

	pager := rds.NewDescribeDBClustersPaginator(p.rds, &rds.DescribeDBClustersInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, mapAWSError("list clusters", err)
		}
		for _, c := range page.DBClusters {
			clusters = append(clusters, toDomainCluster(c))
		}
	}

	return clusters, nil
}

// toDomainCluster converts an RDS cluster description to a domain.Cluster.
func toDomainCluster(c rdstypes.DBCluster) domain.Cluster {
	cluster := domain.Cluster{
		ID:  aws.ToString(c.DBClusterIdentifier),
		ARN: aws.ToString(c.DBClusterArn),
	}

	for _, t := range c.TagList {
		cluster.Tags = append(cluster.Tags, domain.Tag{
			Key:   aws.ToString(t.Key),
			Value: aws.ToString(t.Value),
		})
	}

	for _, m := range c.DBClusterMembers {
		cluster.Members = append(cluster.Members, domain.Member{
			InstanceID: aws.ToString(m.DBInstanceIdentifier),
			IsWriter:   aws.ToBool(m.IsClusterWriter),
		})
	}

	return cluster
}

// --- Tagger implementation ---

// AddTag attaches (or overwrites) a tag on the resource.
func (p *AWSProvider) AddTag(ctx context.Context, arn string, tag domain.Tag) error {
	_, err := p.rds.AddTagsToResource(ctx, &rds.AddTagsToResourceInput{
		ResourceName: aws.String(arn),
		Tags: []rdstypes.Tag{
			{Key: aws.String(tag.Key), Value: aws.String(tag.Value)},
		},
	})
	if err != nil {
		return mapAWSError("add tag "+tag.String(), err)
	}
	return nil
}

// RemoveTag detaches the tag with the given key. Removing an absent key
// is not an error.
func (p *AWSProvider) RemoveTag(ctx context.Context, arn string, key string) error {
	_, err := p.rds.RemoveTagsFromResource(ctx, &rds.RemoveTagsFromResourceInput{
		ResourceName: aws.String(arn),
		TagKeys:      []string{key},
	})
	if err != nil {
		return mapAWSError("remove tag "+key, err)
	}
	return nil
}
