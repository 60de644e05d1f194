package auditlog

import "context"

// Metadata is what a command knows about its run that the root command
// cannot derive from the arguments alone.
type Metadata struct {
	Region       string
	ResourceType string
	Resource     string
	Inserted     int
	DryRun       bool
	// Detail annotates a successful run, e.g. a dashboard write that failed
	// without failing the command.
	Detail string
}

type metadataKey struct{}

// WithMetadata attaches audit metadata to a context. Empty fields keep the
// values of metadata already on ctx.
func WithMetadata(ctx context.Context, meta Metadata) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	existing, _ := ctx.Value(metadataKey{}).(Metadata)
	merged := Metadata{
		Region:       pick(meta.Region, existing.Region),
		ResourceType: pick(meta.ResourceType, existing.ResourceType),
		Resource:     pick(meta.Resource, existing.Resource),
		Inserted:     existing.Inserted + meta.Inserted,
		DryRun:       existing.DryRun || meta.DryRun,
		Detail:       pick(meta.Detail, existing.Detail),
	}
	return context.WithValue(ctx, metadataKey{}, merged)
}

// MetadataFromContext returns audit metadata stored in the context.
func MetadataFromContext(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	meta, _ := ctx.Value(metadataKey{}).(Metadata)
	return meta
}

func pick(next, fallback string) string {
	if next != "" {
		return next
	}
	return fallback
}
