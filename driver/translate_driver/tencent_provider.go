package translate_driver

import (
	"context"
	"fmt"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	tmt "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/tmt/v20180321"
)

// TencentProvider translates through the Tencent Cloud TMT API. It is the
// primary provider when credentials are configured.
type TencentProvider struct {
	client *tmt.Client
}

func NewTencentProvider(secretID, secretKey, region string) (*TencentProvider, error) {
	credential := common.NewCredential(secretID, secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "tmt.tencentcloudapi.com"

	client, err := tmt.NewClient(credential, region, cpf)
	if err != nil {
		return nil, fmt.Errorf("failed to create tmt client: %w", err)
	}

	return &TencentProvider{client: client}, nil
}

func (p *TencentProvider) Name() string { return "tencent-tmt" }

func (p *TencentProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	request := tmt.NewTextTranslateRequest()
	request.SourceText = common.StringPtr(text)
	request.Source = common.StringPtr(sourceLang)
	request.Target = common.StringPtr(targetLang)
	request.ProjectId = common.Int64Ptr(0)

	response, err := p.client.TextTranslateWithContext(ctx, request)
	if err != nil {
		return "", fmt.Errorf("tmt translate failed: %w", err)
	}

	if response.Response == nil || response.Response.TargetText == nil {
		return "", fmt.Errorf("tmt returned an empty response")
	}

	return *response.Response.TargetText, nil
}
