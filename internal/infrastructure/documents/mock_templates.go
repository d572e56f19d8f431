package documents

import (
	"fmt"
	"strconv"
	"time"

	"smartcontract/internal/domain/entities"
)

// Mock-mode content. The templates reproduce what the real document service
// renders so local development and tests see realistic documents.

func mockContractContent(templateID string, data entities.ContractData, now time.Time) string {
	date := now.Format("2006-01-02")
	serial := strconv.FormatInt(now.UnixMilli(), 10)
	if len(serial) > 5 {
		serial = serial[len(serial)-5:]
	}
	amount := strconv.FormatFloat(data.Amount, 'f', -1, 64)
	total := strconv.FormatFloat(data.Amount*float64(data.Quantity), 'f', -1, 64)

	switch templateID {
	case "purchase_contract":
		return fmt.Sprintf(`# 采购合同

## 合同编号：PC%s
## 签订日期：%s

### 甲方（采购方）
名称：%s
地址：中国北京市朝阳区
联系人：张经理
电话：13800138000

### 乙方（供应商）
名称：%s
地址：中国上海市浦东新区
联系人：李经理
电话：13900139000

### 一、采购产品
产品名称：%s
数量：%d 件
单价：%s 元
总金额：%s 元

### 二、质量要求
1. 乙方提供的产品必须符合国家相关标准
2. 产品质保期：自交付之日起12个月
3. 如产品存在质量问题，乙方需在24小时内响应

### 三、交货时间与地点
1. 交货时间：合同签订后7个工作日内
2. 交货地点：甲方指定地点
3. 运输方式：乙方负责运输，运费由乙方承担

### 四、付款方式
1. 合同签订后3个工作日内，甲方支付30%%预付款
2. 产品验收合格后7个工作日内，甲方支付70%%尾款
3. 付款方式：银行转账

### 五、违约责任
1. 如甲方未按约定付款，每逾期一天，支付合同金额的0.1%%作为违约金
2. 如乙方未按约定交货，每逾期一天，支付合同金额的0.1%%作为违约金

### 六、争议解决
本合同履行过程中如发生争议，双方应友好协商解决；协商不成的，提交甲方所在地人民法院诉讼解决。

### 七、其他
1. 本合同一式两份，甲乙双方各执一份，具有同等法律效力
2. 本合同自双方签字盖章之日起生效
3. 本合同未尽事宜，可另行签订补充协议

甲方（采购方）：____________________
签字（盖章）：____________________
日期：%s

乙方（供应商）：____________________
签字（盖章）：____________________
日期：%s
`, serial, date, data.Buyer, data.Seller, data.ProductName, data.Quantity, amount, total, date, date)

	case "sales_contract":
		return fmt.Sprintf(`# 销售合同

## 合同编号：SC%s
## 签订日期：%s

### 甲方（卖方）
名称：%s
地址：中国上海市浦东新区
联系人：李经理
电话：13900139000

### 乙方（买方）
名称：%s
地址：中国北京市朝阳区
联系人：张经理
电话：13800138000

### 一、销售产品
产品名称：%s
数量：%d 件
单价：%s 元
总金额：%s 元

### 二、质量标准
1. 甲方提供的产品必须符合国家相关标准
2. 产品质保期：自交付之日起12个月
3. 如产品存在质量问题，甲方需在24小时内响应

### 三、交货与验收
1. 交货时间：合同签订后5个工作日内
2. 交货地点：乙方指定地点
3. 验收标准：按国家相关标准执行
4. 验收期限：乙方收到产品后3个工作日内完成验收

### 四、付款条款
1. 合同签订后3个工作日内，乙方支付20%%预付款
2. 产品验收合格后10个工作日内，乙方支付80%%尾款
3. 付款方式：银行转账

### 五、知识产权
1. 甲方保证所售产品不侵犯任何第三方知识产权
2. 如因产品知识产权问题引起纠纷，由甲方承担全部责任

### 六、保密条款
1. 双方应对本合同内容及履行过程中知悉的对方商业秘密保密
2. 保密期限：合同终止后5年

### 七、违约责任
1. 如乙方未按约定付款，每逾期一天，支付合同金额的0.1%%作为违约金
2. 如甲方未按约定交货，每逾期一天，支付合同金额的0.1%%作为违约金

### 八、争议解决
本合同履行过程中如发生争议，双方应友好协商解决；协商不成的，提交甲方所在地人民法院诉讼解决。

### 九、其他
1. 本合同一式两份，甲乙双方各执一份，具有同等法律效力
2. 本合同自双方签字盖章之日起生效
3. 本合同未尽事宜，可另行签订补充协议

甲方（卖方）：____________________
签字（盖章）：____________________
日期：%s

乙方（买方）：____________________
签字（盖章）：____________________
日期：%s
`, serial, date, data.Seller, data.Buyer, data.ProductName, data.Quantity, amount, total, date, date)

	default:
		return fmt.Sprintf(`# 合同

合同编号：%s
签订日期：%s

基于模板：%s

这是一份默认合同模板，包含基本的合同条款。
`, serial, date, templateID)
	}
}

func mockReviewSuggestions() string {
	return `审核建议：

1. 付款条款（风险等级：中）：付款安排可能存在不利约定，建议调整付款计划。
2. 合规检查：未发现明显合规问题。
`
}
