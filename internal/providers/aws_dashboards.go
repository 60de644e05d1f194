package providers

import (
	"context"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
)

// --- DashboardStore implementation ---

// GetDashboard returns the raw JSON body of the named dashboard.
func (p *AWSProvider) GetDashboard(ctx context.Context, name string) (string, error) {
	out, err := p.cloudwatch.GetDashboard(ctx, &cloudwatch.GetDashboardInput{
		DashboardName: aws.String(name),
	})
	if err != nil {
		return "", mapAWSError("get dashboard "+name, err)
	}
	return aws.ToString(out.DashboardBody), nil
}

// PutDashboard creates or replaces the named dashboard. Validation
// messages returned alongside a successful write are passed through.
func (p *AWSProvider) PutDashboard(ctx context.Context, name string, body string) ([]domain.ValidationMessage, error) {
	out, err := p.cloudwatch.PutDashboard(ctx, &cloudwatch.PutDashboardInput{
		DashboardName: aws.String(name),
		DashboardBody: aws.String(body),
	})
	if err != nil {
		return nil, mapAWSError("put dashboard "+name, err)
	}

	msgs := make([]domain.ValidationMessage, 0, len(out.DashboardValidationMessages))
	for _, m := range out.DashboardValidationMessages {
		msgs = append(msgs, domain.ValidationMessage{
			DataPath: aws.ToString(m.DataPath),
			Message:  aws.ToString(m.Message),
		})
	}
	return msgs, nil
}

// ListDashboards returns the names of all dashboards starting with prefix.
func (p *AWSProvider) ListDashboards(ctx context.Context, prefix string) ([]string, error) {
	in := &cloudwatch.ListDashboardsInput{}
	if prefix != "" {
		in.DashboardNamePrefix = aws.String(prefix)
	}

	var names []string
	for {
		out, err := p.cloudwatch.ListDashboards(ctx, in)
		if err != nil {
			return nil, mapAWSError("list dashboards", err)
		}
		for _, d := range out.DashboardEntries {
			names = append(names, aws.ToString(d.DashboardName))
		}
		if aws.ToString(out.NextToken) == "" {
			break
		}
		in.NextToken = out.NextToken
	}

	return names, nil
}
