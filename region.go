package cfgx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
)

// StaticRegion returns a RegionSource that always yields region.
// A static source built from an empty string yields nothing, which lets
// callers pass an optional hint through without checking it first.
func StaticRegion(region string) RegionSource {
	return staticRegion(region)
}

type staticRegion string

func (s staticRegion) Region(ctx context.Context) (string, bool) {
	if s == "" {
		return "", false
	}
	return string(s), true
}

// AmbientRegion returns a RegionSource backed by the execution environment's
// default AWS session (shared config files, AWS_REGION, instance metadata).
// An environment with no configured region is normal and yields nothing.
func AmbientRegion() RegionSource {
	return ambientRegion{}
}

type ambientRegion struct{}

func (ambientRegion) Region(ctx context.Context) (string, bool) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil || awsCfg.Region == "" {
		return "", false
	}
	return awsCfg.Region, true
}

// RegionChain composes sources into a single RegionSource evaluated in order.
// The first source to yield a region wins.
func RegionChain(sources ...RegionSource) RegionSource {
	return regionChain(sources)
}

type regionChain []RegionSource

func (c regionChain) Region(ctx context.Context) (string, bool) {
	for _, src := range c {
		if region, ok := src.Region(ctx); ok {
			return region, true
		}
	}
	return "", false
}
