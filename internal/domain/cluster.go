package domain

import (
	"fmt"
	"strings"
)

// Role is the function of an instance within a database cluster.
type Role string

const (
	RoleWriter Role = "WRITER"
	RoleReader Role = "READER"
)

// RoleFor maps the provider-reported writer flag to a Role.
func RoleFor(isWriter bool) Role {
	if isWriter {
		return RoleWriter
	}
	return RoleReader
}

// Tag is a key/value pair attached to a cluster.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// String renders the tag in the key:value form accepted by ParseTag.
func (t Tag) String() string {
	return t.Key + ":" + t.Value
}

// ParseTag splits a "key:value" expression on its first colon.
// The value may be empty or contain further colons; the key may not be empty.
func ParseTag(expr string) (Tag, error) {
	key, value, ok := strings.Cut(expr, ":")
	if !ok {
		return Tag{}, fmt.Errorf("tag %q is invalid: expected key:value", expr)
	}
	if strings.TrimSpace(key) == "" {
		return Tag{}, fmt.Errorf("tag %q is invalid: key must not be empty", expr)
	}
	return Tag{Key: key, Value: value}, nil
}

// Member is one instance reported as part of a cluster.
type Member struct {
	InstanceID string `json:"instance_id"`
	IsWriter   bool   `json:"is_writer"`
}

// Cluster is the subset of a database cluster description the tool needs.
type Cluster struct {
	ID      string   `json:"id"`
	ARN     string   `json:"arn"`
	Tags    []Tag    `json:"tags,omitempty"`
	Members []Member `json:"members,omitempty"`
}

// HasTag reports whether the cluster carries exactly the given key and value.
func (c *Cluster) HasTag(tag Tag) bool {
	for _, t := range c.Tags {
		if t.Key == tag.Key && t.Value == tag.Value {
			return true
		}
	}
	return false
}

// Instances converts the cluster membership into instance descriptors,
// preserving member order.
func (c *Cluster) Instances() []Instance {
	instances := make([]Instance, 0, len(c.Members))
	for _, m := range c.Members {
		instances = append(instances, Instance{
			ClusterID:  c.ID,
			InstanceID: m.InstanceID,
			Role:       RoleFor(m.IsWriter),
		})
	}
	return instances
}

// Instance describes a single cluster member whose metrics are plotted.
type Instance struct {
	ClusterID  string `json:"cluster_id"`
	InstanceID string `json:"instance_id"`
	Role       Role   `json:"role"`
}

// Label is the series label written for the instance: "<instance>-<role>".
func (i Instance) Label() string {
	return i.InstanceID + "-" + string(i.Role)
}
