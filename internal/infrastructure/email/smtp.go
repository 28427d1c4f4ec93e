package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/domain/notification"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	FrontendURL string // Base URL for links rendered into email bodies
}

// SMTPNotifier delivers notifications over SMTP. It implements
// notification.Notifier; callers decide recipients and supply the
// template data, this type only renders and sends.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPNotifier) Send(ctx context.Context, kind notification.Kind, recipients []string, data notification.TemplateData) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients for %s notification", kind)
	}

	var subject, htmlBody, plainBody string

	switch kind {
	case notification.KindAdminNewTicket:
		subject = fmt.Sprintf("[ITSM] 새로운 기술 지원 티켓 - %s 긴급도", str(data, "urgency"))
		ticketURL := fmt.Sprintf("%s/admin/tickets/%v", s.config.FrontendURL, data["ticketID"])
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>새로운 기술 지원 티켓 알림</h2>
				<p>고객: %s</p>
				<p>티켓 ID: #%v</p>
				<p>제목: %s</p>
				<p>긴급도: %s</p>
				<p>상세 내용:</p>
				<pre>%s</pre>
				<p><a href="%s">티켓 상세보기</a></p>
			</body>
			</html>
		`, str(data, "customerName"), data["ticketID"], str(data, "title"), str(data, "urgency"), str(data, "description"), ticketURL)
		plainBody = fmt.Sprintf(`
새로운 기술 지원 티켓 알림

고객: %s
티켓 ID: #%v
제목: %s
긴급도: %s

%s

티켓 확인: %s
		`, str(data, "customerName"), data["ticketID"], str(data, "title"), str(data, "urgency"), str(data, "description"), ticketURL)

	case notification.KindTicketStatusChanged:
		subject = fmt.Sprintf("[ITSM] 티켓 상태 변경 알림 - #%v %s", data["ticketID"], str(data, "title"))
		ticketURL := fmt.Sprintf("%s/my-tickets/%v", s.config.FrontendURL, data["ticketID"])
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>티켓 상태 변경 알림</h2>
				<p>안녕하세요, %s님.</p>
				<p>티켓 <strong>#%v - %s</strong>의 상태가 <strong>'%s'</strong>(으)로 변경되었습니다.</p>
				<p><a href="%s">내 티켓 상세보기</a></p>
			</body>
			</html>
		`, str(data, "customerName"), data["ticketID"], str(data, "title"), str(data, "status"), ticketURL)
		plainBody = fmt.Sprintf(`
티켓 상태 변경 알림

안녕하세요, %s님.
티켓 #%v - %s의 상태가 '%s'(으)로 변경되었습니다.

티켓 확인: %s
		`, str(data, "customerName"), data["ticketID"], str(data, "title"), str(data, "status"), ticketURL)

	case notification.KindTicketClosed:
		subject = fmt.Sprintf("[ITSM] 티켓 종료 알림 - #%v %s", data["ticketID"], str(data, "title"))
		ticketURL := fmt.Sprintf("%s/my-tickets/%v", s.config.FrontendURL, data["ticketID"])
		assignee := str(data, "assigneeName")
		if assignee == "" {
			assignee = "미지정"
		}
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>티켓 종료 알림</h2>
				<p>안녕하세요, %s님.</p>
				<p>기술 지원 티켓 <strong>#%v - %s</strong>이(가) 종결 처리되었습니다.</p>
				<p>담당자: %s</p>
				<p>추가 지원이 필요하시면 새 티켓을 생성해 주세요.</p>
				<p><a href="%s">종료된 티켓 확인하기</a></p>
			</body>
			</html>
		`, str(data, "customerName"), data["ticketID"], str(data, "title"), assignee, ticketURL)
		plainBody = fmt.Sprintf(`
티켓 종료 알림

안녕하세요, %s님.
기술 지원 티켓 #%v - %s이(가) 종결 처리되었습니다.
담당자: %s

추가 지원이 필요하시면 새 티켓을 생성해 주세요.
티켓 확인: %s
		`, str(data, "customerName"), data["ticketID"], str(data, "title"), assignee, ticketURL)

	case notification.KindMagicLink:
		subject = "[ITSM] 로그인 승인 및 링크 안내"
		loginURL := str(data, "loginURL")
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>ITSM 로그인 링크</h2>
				<p>안녕하세요! 아래 링크를 클릭하여 로그인하세요.</p>
				<p><a href="%s">ITSM 로그인</a></p>
				<p>링크가 열리지 않으면 URL을 복사해 브라우저에 붙여넣으세요:</p>
				<p>%s</p>
			</body>
			</html>
		`, loginURL, loginURL)
		plainBody = fmt.Sprintf(`
ITSM 로그인 링크

아래 URL로 접속하여 로그인하세요:
%s
		`, loginURL)

	case notification.KindAdminNewAccessRequest:
		subject = "[ITSM] 새로운 접근 요청"
		company := str(data, "companyName")
		if company == "" {
			company = "미입력"
		}
		adminURL := fmt.Sprintf("%s/admin/access-requests", s.config.FrontendURL)
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>새로운 사용자 접근 요청</h2>
				<p>새로운 사용자가 비밀번호 없는 로그인을 요청했습니다. 승인 처리가 필요합니다.</p>
				<p>이름: %s</p>
				<p>이메일: %s</p>
				<p>회사: %s</p>
				<p><a href="%s">접근 요청 관리 페이지로 이동</a></p>
			</body>
			</html>
		`, str(data, "name"), str(data, "email"), company, adminURL)
		plainBody = fmt.Sprintf(`
새로운 사용자 접근 요청

이름: %s
이메일: %s
회사: %s

접근 요청 관리: %s
		`, str(data, "name"), str(data, "email"), company, adminURL)

	case notification.KindAccessRequestRejected:
		subject = "[ITSM] 접근 요청 거절 안내"
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>접근 요청 거절 안내</h2>
				<p>안녕하세요, %s님.</p>
				<p>죄송합니다만, 회원님의 ITSM 접근 요청이 거절되었습니다.</p>
				<p>추가 문의사항이 있으시면 ITSM 지원팀에 연락해 주시기 바랍니다.</p>
			</body>
			</html>
		`, str(data, "name"))
		plainBody = fmt.Sprintf(`
접근 요청 거절 안내

안녕하세요, %s님.
죄송합니다만, 회원님의 ITSM 접근 요청이 거절되었습니다.
추가 문의사항이 있으시면 ITSM 지원팀에 연락해 주시기 바랍니다.
		`, str(data, "name"))

	case notification.KindUserApproved:
		subject = "계정 승인 완료 안내"
		htmlBody = fmt.Sprintf(`
			<html>
			<body>
				<h2>ITSM 계정 승인 완료</h2>
				<p>안녕하세요, %s님!</p>
				<p>회원님의 계정이 정상적으로 승인되었습니다.</p>
				<p>이제 ITSM 시스템을 자유롭게 이용하실 수 있습니다.</p>
			</body>
			</html>
		`, str(data, "name"))
		plainBody = fmt.Sprintf(`
ITSM 계정 승인 완료

안녕하세요, %s님!
회원님의 계정이 정상적으로 승인되었습니다.
이제 ITSM 시스템을 자유롭게 이용하실 수 있습니다.
		`, str(data, "name"))

	default:
		return fmt.Errorf("unknown notification kind: %s", kind)
	}

	return s.sendEmail(ctx, recipients, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) sendEmail(ctx context.Context, to []string, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func str(data notification.TemplateData, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return ""
}
