package providers

import (
	"context"
	"fmt"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/rds"
)

// AWSName is the registry key of the AWS provider.
const AWSName = "aws"

// rdsAPI is the subset of the RDS client the provider calls.
type rdsAPI interface {
	DescribeDBClusters(ctx context.Context, in *rds.DescribeDBClustersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClustersOutput, error)
	AddTagsToResource(ctx context.Context, in *rds.AddTagsToResourceInput, optFns ...func(*rds.Options)) (*rds.AddTagsToResourceOutput, error)
	RemoveTagsFromResource(ctx context.Context, in *rds.RemoveTagsFromResourceInput, optFns ...func(*rds.Options)) (*rds.RemoveTagsFromResourceOutput, error)
}

// cloudwatchAPI is the subset of the CloudWatch client the provider calls.
type cloudwatchAPI interface {
	GetDashboard(ctx context.Context, in *cloudwatch.GetDashboardInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetDashboardOutput, error)
	PutDashboard(ctx context.Context, in *cloudwatch.PutDashboardInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutDashboardOutput, error)
	ListDashboards(ctx context.Context, in *cloudwatch.ListDashboardsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.ListDashboardsOutput, error)
}

// AWSProvider implements domain.Provider using the RDS and CloudWatch APIs.
type AWSProvider struct {
	rds        rdsAPI
	cloudwatch cloudwatchAPI
	region     string
}

// NewAWSProvider loads the shared AWS configuration (environment, shared
// config files, instance role) and builds clients for the given region.
// An empty region or profile leaves the SDK's own resolution in place.
func NewAWSProvider(ctx context.Context, opts Options) (*AWSProvider, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return newAWSProviderFromConfig(cfg), nil
}

func newAWSProviderFromConfig(cfg aws.Config) *AWSProvider {
	return &AWSProvider{
		rds:        rds.NewFromConfig(cfg),
		cloudwatch: cloudwatch.NewFromConfig(cfg),
		region:     cfg.Region,
	}
}

// RegisterAWS registers the AWS provider factory with the global registry.
func RegisterAWS() {
	Register(AWSName, func(ctx context.Context, opts Options) (domain.Provider, error) {
		p, err := NewAWSProvider(ctx, opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}

func (p *AWSProvider) GetDisplayName() string {
	return "AWS"
}

// Region returns the region the clients were configured for.
func (p *AWSProvider) Region() string {
	return p.region
}
